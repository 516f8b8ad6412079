package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/kralicky/zazus/pkg/zazus"
)

func main() {
	code := 0
	if err := zazus.BuildRootCmd(runtime.GOOS).Execute(); err != nil {
		fmt.Println(err)
		code = 1
	}
	if runtime.GOOS == "windows" {
		zazus.WaitForEnter(os.Stdin, os.Stdout)
	}
	os.Exit(code)
}
