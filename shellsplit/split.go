// Package shellsplit tokenizes a shell command line the way a POSIX
// shell would, for reading legacy "command" fields from a compilation
// database and for parsing MPI wrapper "-show"/"--showme" output.
package shellsplit

import (
	"regexp"

	"github.com/google/shlex"
)

var (
	quotedEscape   = regexp.MustCompile(`\\(["\\])`)
	unquotedEscape = regexp.MustCompile(`\\([\\ $%&()\[\]{}*|<>@?!])`)
)

// Split tokenizes s and unescapes each resulting token. Tokenization
// itself is delegated to shlex, which handles quoting and whitespace;
// the unescaping pass afterward applies the asymmetric rule this format
// expects: a token that is wholly wrapped in double quotes only
// unescapes \" and \\, while every other token unescapes a wider set of
// shell metacharacters.
func Split(s string) ([]string, error) {
	tokens, err := shlex.Split(s)
	if err != nil {
		return nil, err
	}
	result := make([]string, len(tokens))
	for i, token := range tokens {
		result[i] = unescape(token)
	}
	return result, nil
}

func unescape(arg string) string {
	if len(arg) >= 2 && arg[0] == '"' && arg[len(arg)-1] == '"' {
		return quotedEscape.ReplaceAllString(arg[1:len(arg)-1], "$1")
	}
	return unquotedEscape.ReplaceAllString(arg, "$1")
}
