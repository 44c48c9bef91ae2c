package main

import (
	"github.com/charankumarpalimara/jewelstock/internal/cmd"
)

func main() {
	cmd.Execute()
}
