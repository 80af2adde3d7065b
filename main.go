package main

import "github.com/huanfeng/pacview/cmd"

func main() {
	cmd.Execute()
}
