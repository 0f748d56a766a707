package version

import (
	"testing"

	"GuardianesDelFuego/internal/testutils"
)

func TestCommandNameFrom(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/usr/local/bin/guardianes", "guardianes"},
		{"/tmp/go-build123/b001/cmd.test", "guardianes"},
		{`C:\tmp\cmd.test.exe`, "guardianes"},
		{"/tmp/go-build123/exe/main", "guardianes"},
		{"/opt/fuego/bin/fuego", "fuego"},
		{"fuego.exe", "fuego"},
	}
	var cases []testutils.TestCase
	for _, tt := range tests {
		got := commandNameFrom(tt.path)
		cases = append(cases, testutils.TestCase{Input: tt.path, Expected: tt.want, Actual: got, Pass: got == tt.want})
	}
	testutils.PrintTestTable(t, cases)
}
