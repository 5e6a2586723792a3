// Package cli provides the interactive students command-line client.
//
// The App connects to the gRPC endpoint, then runs a REPL until the user
// exits. Commands:
//
//	login            authenticate (password read without echo)
//	logout           revoke the current token
//	list             list all students
//	show <id>        show one student
//	add              create a student (interactive prompts)
//	update <id>      change some attributes (empty answer keeps the value)
//	delete <id>      delete a student
//	export           upload a JSON export, print its link and save a copy under ./exports
//	help, exit
package cli
