// cmd/memplane/main.go
package main

import (
	"memplane/internal/app"
	"memplane/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
