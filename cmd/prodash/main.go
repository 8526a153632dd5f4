// Command prodash is a demo CLI exercising the progress tree and both
// renderers end-to-end.
package main

func main() {
	Execute()
}
