package monitor

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/stackproc/emulator"
	"github.com/ezrec/stackproc/translate"
)

var testFiles = fstest.MapFS{
	"double.sm": {Data: []byte(strings.Join([]string{
		"double:   # n -- 2n",
		"\tDUP",
		"\tADD",
		"\tRET",
	}, "\n"))},
	"bad.sm": {Data: []byte("JMP nowhere\n")},
	"runaway.sm": {Data: []byte("start:\n\tLIT 1\n")},
}

func newTestMonitor(t *testing.T) (mon *Monitor, out *bytes.Buffer) {
	t.Helper()

	if err := translate.SetLanguage("en-US"); err != nil {
		t.Fatal(err)
	}

	out = &bytes.Buffer{}
	mon = NewMonitor(emulator.NewEmulator(), out)
	mon.Open = func(name string) (io.ReadCloser, error) {
		return testFiles.Open(name)
	}

	return
}

func TestMonitorInstruction(t *testing.T) {
	assert := assert.New(t)

	mon, out := newTestMonitor(t)

	assert.False(mon.Command("LIT 5"))
	assert.Equal("Data Stack:    [5]\n"+
		"Return Stack:  []\n"+
		"Program Counter:  STOP\n\n", out.String())

	out.Reset()
	assert.False(mon.Command("add"))
	assert.Contains(out.String(), "ERROR:  data stack must have at least 2 values\n")
	assert.Contains(out.String(), "Data Stack:    [5]\n")

	out.Reset()
	assert.False(mon.Command("   "))
	assert.Empty(out.String())
}

func TestMonitorLoadAndCall(t *testing.T) {
	assert := assert.New(t)

	mon, out := newTestMonitor(t)

	assert.False(mon.Command("LOAD double.sm"))
	assert.Contains(out.String(), "Loaded program from double.sm\n")
	assert.Contains(out.String(), "double:\n\tDUP\n\tADD\n\tRET\n")
	assert.NotNil(mon.Program())

	out.Reset()
	assert.False(mon.Command("LIT 21"))
	assert.False(mon.Command("call double"))
	assert.NotContains(out.String(), "ERROR")
	assert.Contains(out.String(), "Data Stack:    [42]\n")
	assert.True(mon.Pc().Halted())
}

func TestMonitorLoadErrors(t *testing.T) {
	assert := assert.New(t)

	mon, out := newTestMonitor(t)

	mon.Command("LOAD bad.sm")
	assert.Contains(out.String(), "Program contains errors!\n")
	assert.Contains(out.String(), "line 1")
	assert.Contains(out.String(), "nowhere")
	assert.Nil(mon.Program())

	out.Reset()
	mon.Command("LOAD missing.sm")
	assert.Contains(out.String(), "ERROR:  Couldn't load file missing.sm\n")

	out.Reset()
	mon.Command("LOAD")
	assert.Contains(out.String(), "ERROR:  LOAD takes one file name\n")
}

func TestMonitorCallError(t *testing.T) {
	assert := assert.New(t)

	mon, out := newTestMonitor(t)

	mon.Command("LOAD runaway.sm")
	out.Reset()

	mon.Command("CALL start")
	assert.Contains(out.String(), "ERROR:  ")
	assert.Contains(out.String(), "(you may need to RESET the processor)\n")

	out.Reset()
	mon.Command("reset")
	assert.Contains(out.String(), "Resetting processor.\n")
	assert.Nil(mon.Program())
	assert.True(mon.Data.Empty())
	assert.True(mon.Return.Empty())
}

func TestMonitorDebug(t *testing.T) {
	assert := assert.New(t)

	mon, out := newTestMonitor(t)

	assert.False(mon.Command("DEBUG"))
	assert.True(mon.Verbose)
	assert.Equal("Turning on debug output\n", out.String())

	out.Reset()
	assert.False(mon.Command("nodebug"))
	assert.False(mon.Verbose)
	assert.Equal("Turning off debug output\n", out.String())
}

func TestMonitorHelp(t *testing.T) {
	assert := assert.New(t)

	mon, out := newTestMonitor(t)

	assert.False(mon.Command("help"))
	for _, cmd := range []string{"HELP", "QUIT", "EXIT", "LOAD filename.sm", "RESET", "DEBUG", "NODEBUG"} {
		assert.Contains(out.String(), cmd+"\n")
	}
}

func TestMonitorServe(t *testing.T) {
	assert := assert.New(t)

	mon, out := newTestMonitor(t)
	mon.Prompt = "sp> "

	input := strings.Join([]string{
		"LOAD double.sm",
		"LIT 4",
		"",
		"CALL double",
		"quit",
		"LIT 99",
	}, "\n")

	assert.NoError(mon.Serve(strings.NewReader(input)))
	assert.Equal(5, strings.Count(out.String(), "sp> "))
	assert.Contains(out.String(), "Data Stack:    [8]\n")
	assert.NotContains(out.String(), "99")
	assert.True(strings.HasSuffix(out.String(), "Goodbye!\n"))
}

func TestMonitorServeEOF(t *testing.T) {
	assert := assert.New(t)

	mon, out := newTestMonitor(t)

	assert.NoError(mon.Serve(strings.NewReader("LIT 1\n")))
	assert.True(strings.HasSuffix(out.String(), "> Goodbye!\n"))
}

func TestMonitorBatch(t *testing.T) {
	assert := assert.New(t)

	mon, out := newTestMonitor(t)

	mon.Batch("double.sm", []string{"LIT 21", "CALL double"})
	text := out.String()
	assert.True(strings.HasPrefix(text, "Loaded program from double.sm\n"))
	assert.Equal(2, strings.Count(text, "Data Stack:"))
	assert.True(strings.HasSuffix(text, "Data Stack:    [42]\n"+
		"Return Stack:  []\n"+
		"Program Counter:  STOP\n\n"))
}

func TestMonitorBatchProgramErrors(t *testing.T) {
	assert := assert.New(t)

	mon, out := newTestMonitor(t)

	mon.Batch("bad.sm", []string{"LIT 3", "quit", "LIT 4"})
	assert.Nil(mon.Program())
	assert.Contains(out.String(), "Program contains errors!\n")
	assert.Equal([]string{"3"}, stackText(mon))
	assert.Equal(1, strings.Count(out.String(), "Data Stack:"))
}

func stackText(mon *Monitor) (values []string) {
	for _, value := range mon.Data.Data {
		values = append(values, value.String())
	}
	return
}
