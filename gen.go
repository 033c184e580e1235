//go:build gen

package main

import (
	"bytes"
	"log"
	"os"
	"os/exec"
)

var projectRoot = func() string {
	cmd := exec.Command("go", "list", "-f", "{{.Root}}", "github.com/winstonewert/inlinable-string")
	out, err := cmd.CombinedOutput()
	if err != nil {
		log.Fatalf("error running command %q: %v\n\n%s\n",
			cmd.Args, err, bytes.TrimSpace(out))
	}
	dir := string(bytes.TrimSpace(out))
	if _, err := os.Stat(dir); err != nil {
		log.Fatal(err)
	}
	return dir
}

func main() {
	log.SetPrefix("gen: ")
	log.SetFlags(log.Lshortfile)

	root := projectRoot()
	args := append([]string{"run", "./internal/gen/genwidths"}, os.Args[1:]...)
	cmd := exec.Command("go", args...)
	cmd.Dir = root
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		log.Fatalf("error running command %q: %v", cmd.Args, err)
	}
}
