package zazus

import (
	"bufio"
	"fmt"
	"io"
)

// WaitForEnter keeps a console window open until the user presses enter.
func WaitForEnter(in io.Reader, out io.Writer) {
	fmt.Fprintln(out, "Press ENTER to continue...")
	bufio.NewReader(in).ReadString('\n')
}
