package catalog

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/PatrikBak/GeoGen-sub011/core"
)

// ParseSignature parses a comma separated parameter list in the notation
// printed by core.Parameter.String, e.g. "Point, Set(Set(Point, 2), 2)".
func ParseSignature(s string) ([]core.Parameter, error) {
	sc := newScanner(s)
	var out []core.Parameter
	for {
		p, err := sc.parameter()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
		if !sc.accept(',') {
			break
		}
	}
	if err := sc.end(); err != nil {
		return nil, err
	}

	return out, nil
}

// argExpr is a parsed argument expression before names are resolved.
type argExpr struct {
	name  string
	items []argExpr
}

// parseArguments parses "A, {B, C}" style argument lists.
func parseArguments(s string) ([]argExpr, error) {
	sc := newScanner(s)
	list, err := sc.argumentList()
	if err != nil {
		return nil, err
	}
	if err := sc.end(); err != nil {
		return nil, err
	}

	return list, nil
}

// names appends every object name referenced by e.
func (e argExpr) names(dst []string) []string {
	if e.items == nil {
		return append(dst, e.name)
	}
	for _, it := range e.items {
		dst = it.names(dst)
	}

	return dst
}

// resolve builds the core argument, looking names up in objs.
func (e argExpr) resolve(objs map[string]*core.Object) (core.Argument, error) {
	if e.items == nil {
		o, ok := objs[e.name]
		if !ok {
			return core.Argument{}, fmt.Errorf("%w: %q", ErrUnknownObject, e.name)
		}
		return core.ObjectArgument(o), nil
	}
	items := make([]core.Argument, len(e.items))
	for i, it := range e.items {
		a, err := it.resolve(objs)
		if err != nil {
			return core.Argument{}, err
		}
		items[i] = a
	}

	return core.SetArgument(items...), nil
}

// scanner is a hand-written lexer over the tiny signature/argument grammar:
//
//	params := param ("," param)*
//	param  := Type | "Set" "(" param "," int ")"
//	args   := item ("," item)*
//	item   := name | "{" args "}"
type scanner struct {
	src []rune
	pos int
}

func newScanner(s string) *scanner { return &scanner{src: []rune(s)} }

func (sc *scanner) skipSpace() {
	for sc.pos < len(sc.src) && unicode.IsSpace(sc.src[sc.pos]) {
		sc.pos++
	}
}

func (sc *scanner) accept(r rune) bool {
	sc.skipSpace()
	if sc.pos < len(sc.src) && sc.src[sc.pos] == r {
		sc.pos++
		return true
	}

	return false
}

func (sc *scanner) expect(r rune) error {
	if !sc.accept(r) {
		return sc.errorf("expected %q", r)
	}

	return nil
}

func (sc *scanner) ident() (string, error) {
	sc.skipSpace()
	start := sc.pos
	for sc.pos < len(sc.src) && isIdentRune(sc.src[sc.pos]) {
		sc.pos++
	}
	if start == sc.pos {
		return "", sc.errorf("expected a name")
	}

	return string(sc.src[start:sc.pos]), nil
}

func (sc *scanner) end() error {
	sc.skipSpace()
	if sc.pos != len(sc.src) {
		return sc.errorf("unexpected %q", sc.src[sc.pos])
	}

	return nil
}

func (sc *scanner) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: at %d in %q: %s", ErrSyntax, sc.pos, string(sc.src), fmt.Sprintf(format, args...))
}

func (sc *scanner) parameter() (core.Parameter, error) {
	word, err := sc.ident()
	if err != nil {
		return core.Parameter{}, err
	}
	if !strings.EqualFold(word, "Set") {
		t, err := core.ParseObjectType(word)
		if err != nil {
			return core.Parameter{}, sc.errorf("%v", err)
		}
		return core.ObjectParameter(t), nil
	}

	if err := sc.expect('('); err != nil {
		return core.Parameter{}, err
	}
	inner, err := sc.parameter()
	if err != nil {
		return core.Parameter{}, err
	}
	if err := sc.expect(','); err != nil {
		return core.Parameter{}, err
	}
	raw, err := sc.ident()
	if err != nil {
		return core.Parameter{}, err
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return core.Parameter{}, sc.errorf("bad set size %q", raw)
	}
	if err := sc.expect(')'); err != nil {
		return core.Parameter{}, err
	}

	return core.SetParameter(inner, n), nil
}

func (sc *scanner) argumentList() ([]argExpr, error) {
	var out []argExpr
	for {
		var item argExpr
		if sc.accept('{') {
			items, err := sc.argumentList()
			if err != nil {
				return nil, err
			}
			if err := sc.expect('}'); err != nil {
				return nil, err
			}
			item.items = items
		} else {
			name, err := sc.ident()
			if err != nil {
				return nil, err
			}
			item.name = name
		}
		out = append(out, item)
		if !sc.accept(',') {
			return out, nil
		}
	}
}

// isIdentRune reports whether r may appear in an object name.
func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '\''
}

// validName reports whether s is a usable object name.
func validName(s string) bool {
	if s == "" || !unicode.IsLetter([]rune(s)[0]) {
		return false
	}
	for _, r := range s {
		if !isIdentRune(r) {
			return false
		}
	}

	return true
}
