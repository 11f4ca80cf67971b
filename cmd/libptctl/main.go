// Command libptctl builds the C shared library loaded by foreign runtimes:
//
//	go build -buildmode=c-shared -o libptctl.so ./cmd/libptctl
//
// The generated header declares the ptctl_* functions.
package main

func main() {}
