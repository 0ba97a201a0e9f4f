package main

import "github.com/lexiscope/lexiscope/compiler/internal/term"

func usage() {
	term.Eprintln("lexis: token, structure and scope analyzer for a small C-like statement language")
	term.Eprintln("")
	term.Eprintln("Usage:")
	term.Eprintln("  lexis <command> [args]")
	term.Eprintln("")
	term.Eprintln("Commands:")
	term.Eprintln("  version                                   Print version")
	term.Eprintln("  help                                      Show this help")
	term.Eprintln("  lex [--config=f] <file>                   Print tokens and lexical errors")
	term.Eprintln("  check [--config=f] [--format=text|json] [--jobs=N] [--verbose] <file|dir>...")
	term.Eprintln("                                            Run all three stages and report findings")
	term.Eprintln("  export [--config=f] [--format=text|ndjson] [--out=path] <file>")
	term.Eprintln("                                            Write the token listing")
	term.Eprintln("  lex-diff [--config=f] [--limit=N] <tokens.ndjson> <file>")
	term.Eprintln("                                            Compare a saved token listing with a fresh lex")
	term.Eprintln("")
	term.Eprintln("Notes:")
	term.Eprintln("  - Flags may appear before or after the files; '--k v' and '--k=v' are both accepted.")
	term.Eprintln("  - Directories expand to their *.lx files.")
	term.Eprintln("  - --config points at a JSON file with keywords, two_char_ops, one_char_ops, symbols, exempt.")
	term.Eprintln("")
	term.Eprintln("Exit status: 0 clean, 1 findings or I/O failure, 2 usage error.")
}
