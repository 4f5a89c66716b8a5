package main

import (
	"fmt"
	"io"

	"github.com/darkkaiser/cronhuman/internal/config"
	"github.com/darkkaiser/cronhuman/internal/pkg/version"
)

// runVersion 빌드 정보를 출력합니다. --short를 지정하면 버전 문자열만 출력합니다.
func runVersion(args []string, stdout io.Writer) error {
	fs := newFlagSet("version", stdout)
	short := fs.BoolP("short", "s", false, "버전 문자열만 출력합니다")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	bi := version.Get()
	if *short {
		fmt.Fprintln(stdout, bi.Version)
		return nil
	}

	fmt.Fprintf(stdout, "%s %s\n", config.AppName, bi.String())
	return nil
}
