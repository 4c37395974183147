package main

import "github.com/jscott1989/push-notifications-service/cmd"

func main() {
	cmd.Execute()
}
