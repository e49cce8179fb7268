package main

import (
	"github.com/bornholm/recordbox/internal/command"
	"github.com/bornholm/recordbox/internal/command/colours"
	"github.com/bornholm/recordbox/internal/command/contacts"
)

func main() {
	command.Main(
		"recordbox-cli", "a recordbox client tool",
		contacts.Command(),
		colours.Command(),
	)
}
