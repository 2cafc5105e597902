/*------------------------------------------------------------------------------
* trace.go : debug trace facility
*
* notes  : logging is advisory only. no library routine changes behaviour
*          based on the trace sink or level.
*-----------------------------------------------------------------------------*/
package gnsscore

import (
	"fmt"
	"io"
	"os"
)

var (
	fpTrace    io.Writer = io.Discard
	levelTrace int
)

/* open trace ------------------------------------------------------------------
* open trace sink. an empty path selects stderr
* args   : string file      I   trace file path ("": stderr)
* return : none
*-----------------------------------------------------------------------------*/
func TraceOpen(file string) {
	if len(file) == 0 {
		fpTrace = os.Stderr
		return
	}
	fp, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		fpTrace = os.Stderr
		Trace(2, "trace file open error: %s\n", err)
		return
	}
	fpTrace = fp
}

/* close trace -----------------------------------------------------------------*/
func TraceClose() {
	if fp, ok := fpTrace.(io.Closer); ok && fpTrace != os.Stderr {
		fp.Close()
	}
	fpTrace = io.Discard
}

/* set trace level (1:error,2:warn,3:info,4:debug,5:trace) ---------------------*/
func TraceLevel(level int) {
	levelTrace = level
}

/* set trace sink directly -----------------------------------------------------*/
func SetTraceWriter(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	fpTrace = w
}

/* output trace ----------------------------------------------------------------
* output formatted message to the trace sink if level <= current trace level
* args   : int    level     I   message level
*          string format    I   printf style format
*          ...    v         I   values
* return : none
*-----------------------------------------------------------------------------*/
func Trace(level int, format string, v ...interface{}) {
	if level > levelTrace {
		return
	}
	fmt.Fprintf(fpTrace, "%d ", level)
	fmt.Fprintf(fpTrace, format, v...)
}
