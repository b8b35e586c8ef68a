package keymap

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/text/encoding/charmap"

	kerrors "github.com/matzehuels/kbdlayout/pkg/errors"
)

const (
	// DefaultIncludeDir is where include targets are looked up.
	DefaultIncludeDir = "keymaps"

	// DefaultMaxIncludeDepth bounds include nesting so cycles fail instead
	// of recursing forever.
	DefaultMaxIncludeDepth = 32

	includeExt = ".inc"
)

// OpenFunc opens a keymap source by path.
type OpenFunc func(name string) (io.ReadCloser, error)

// OpenFS returns an OpenFunc reading from fsys.
func OpenFS(fsys fs.FS) OpenFunc {
	return func(name string) (io.ReadCloser, error) {
		return fsys.Open(filepath.ToSlash(name))
	}
}

func openOS(name string) (io.ReadCloser, error) { return os.Open(name) }

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithOpener sets how sources and includes are opened (default os.Open).
func WithOpener(open OpenFunc) Option { return func(in *Interpreter) { in.open = open } }

// WithFS reads sources and includes from fsys.
func WithFS(fsys fs.FS) Option { return WithOpener(OpenFS(fsys)) }

// WithIncludeDir sets the directory include targets are resolved in.
func WithIncludeDir(dir string) Option { return func(in *Interpreter) { in.includeDir = dir } }

// WithMaxIncludeDepth bounds include nesting.
func WithMaxIncludeDepth(n int) Option { return func(in *Interpreter) { in.maxDepth = n } }

// WithLogger sets the logger used for debug tracing of includes.
func WithLogger(l *log.Logger) Option { return func(in *Interpreter) { in.logger = l } }

// Interpreter reads keymap sources. It holds configuration only; all parse
// state lives in the Builder and a per-call state value.
type Interpreter struct {
	open       OpenFunc
	includeDir string
	maxDepth   int
	logger     *log.Logger
}

// NewInterpreter creates an Interpreter reading from the OS file system and
// resolving includes under [DefaultIncludeDir].
func NewInterpreter(opts ...Option) *Interpreter {
	in := &Interpreter{
		open:       openOS,
		includeDir: DefaultIncludeDir,
		maxDepth:   DefaultMaxIncludeDepth,
	}
	for _, opt := range opts {
		opt(in)
	}
	if in.logger == nil {
		in.logger = log.Default()
	}
	return in
}

// Load interprets path with a default Interpreter.
func Load(path string) (*Keymap, error) {
	return NewInterpreter().Load(path)
}

// Load interprets path into a fresh table.
func (in *Interpreter) Load(path string) (*Keymap, error) {
	b := NewBuilder()
	if err := in.Interpret(path, b); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

// Interpret reads path into b.
func (in *Interpreter) Interpret(path string, b *Builder) error {
	return in.interpretFile(path, newState(b))
}

// InterpretReader reads a source that is already open. name is used in
// error messages only; includes are still resolved through the opener.
func (in *Interpreter) InterpretReader(name string, r io.Reader, b *Builder) error {
	return in.interpret(name, r, newState(b))
}

// state is shared by a file and everything it includes.
type state struct {
	b       *Builder
	columns []int
	depth   int
}

func newState(b *Builder) *state {
	return &state{b: b, columns: defaultColumns()}
}

func (in *Interpreter) interpretFile(path string, st *state) error {
	f, err := in.open(path)
	if err != nil {
		return kerrors.Wrap(kerrors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	return in.interpret(path, f, st)
}

func (in *Interpreter) interpret(name string, r io.Reader, st *state) error {
	scanner := bufio.NewScanner(charmap.ISO8859_1.NewDecoder().Reader(r))

	var pending strings.Builder
	lineNo, startLine := 0, 0

	for scanner.Scan() {
		lineNo++
		raw := strings.TrimRight(scanner.Text(), " \t\r")
		if pending.Len() == 0 {
			startLine = lineNo
		}
		if cont, ok := strings.CutSuffix(raw, `\`); ok {
			pending.WriteString(cont)
			pending.WriteByte(' ')
			continue
		}
		pending.WriteString(raw)
		line := pending.String()
		pending.Reset()

		if err := in.directive(name, startLine, line, st); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if pending.Len() > 0 {
		return in.directive(name, startLine, pending.String(), st)
	}
	return nil
}

func (in *Interpreter) directive(file string, lineNo int, line string, st *state) error {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "include":
		return in.include(file, lineNo, strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "include")), st)
	case "keymaps":
		cols, err := ParseColumns(strings.Join(fields[1:], ""))
		if err != nil {
			return fmt.Errorf("%s:%d: %w", file, lineNo, err)
		}
		st.columns = cols
		return nil
	case "charset", "alt_is_meta", "string", "strings", "compose":
		return nil
	case "keycode":
		code, syms, err := parseKeycode(strings.Join(fields[1:], " "))
		if err != nil {
			return fmt.Errorf("%s:%d: %w", file, lineNo, err)
		}
		if err := assign(st, code, syms); err != nil {
			return fmt.Errorf("%s:%d: %w", file, lineNo, err)
		}
		return nil
	}

	return in.explicitColumn(file, lineNo, fields, st)
}

// explicitColumn handles "<modifier>... keycode N = sym".
func (in *Interpreter) explicitColumn(file string, lineNo int, fields []string, st *state) error {
	var mods []Modifier
	for i, f := range fields {
		if f == "keycode" && len(mods) > 0 {
			code, syms, err := parseKeycode(strings.Join(fields[i+1:], " "))
			if err != nil {
				return fmt.Errorf("%s:%d: %w", file, lineNo, err)
			}
			switch {
			case len(syms) == 0:
				return kerrors.New(kerrors.ErrCodeUnrecognizedDirective,
					"%s:%d: %q: expected one keysym", file, lineNo, strings.Join(fields, " "))
			case len(syms) > 1:
				return kerrors.New(kerrors.ErrCodeTooManyKeysyms,
					"%s:%d: %d keysyms for a single column", file, lineNo, len(syms))
			}
			st.b.Set(code, Column(mods...), syms[0])
			return nil
		}
		m, ok := ParseModifier(f)
		if !ok {
			break
		}
		mods = append(mods, m)
	}
	return kerrors.New(kerrors.ErrCodeUnrecognizedDirective,
		"%s:%d: unrecognized directive %q", file, lineNo, strings.Join(fields, " "))
}

func (in *Interpreter) include(file string, lineNo int, arg string, st *state) error {
	name := unquote(arg)
	if name == "" {
		return kerrors.New(kerrors.ErrCodeUnrecognizedDirective, "%s:%d: include without a name", file, lineNo)
	}
	if st.depth >= in.maxDepth {
		return kerrors.New(kerrors.ErrCodeIncludeDepth,
			"%s:%d: include %q exceeds maximum depth %d", file, lineNo, name, in.maxDepth)
	}

	path := filepath.Join(in.includeDir, name+includeExt)
	in.logger.Debug("include", "file", file, "line", lineNo, "path", path, "depth", st.depth+1)

	st.depth++
	defer func() { st.depth-- }()
	if err := in.interpretFile(path, st); err != nil {
		return fmt.Errorf("%s:%d: include %q: %w", file, lineNo, name, err)
	}
	return nil
}

// parseKeycode splits "N = sym sym ..." into the keycode and its keysyms.
func parseKeycode(rest string) (int, []string, error) {
	left, right, ok := strings.Cut(rest, "=")
	if !ok {
		return 0, nil, kerrors.New(kerrors.ErrCodeUnrecognizedDirective, "keycode %q: missing '='", rest)
	}
	code, err := strconv.Atoi(strings.TrimSpace(left))
	if err != nil || code < 0 {
		return 0, nil, kerrors.New(kerrors.ErrCodeInvalidKeycode, "invalid keycode %q", strings.TrimSpace(left))
	}
	return code, strings.Fields(right), nil
}

// assign applies a bare keycode line to the currently selected columns.
func assign(st *state, code int, syms []string) error {
	switch {
	case len(syms) == 0:
		st.b.Clear(code)
	case len(syms) == 1 && isSingleLetter(syms[0]):
		for _, c := range st.columns {
			st.b.Set(code, c, letterVariant(syms[0][0], c))
		}
	case len(syms) == 1:
		for _, c := range st.columns {
			st.b.Set(code, c, syms[0])
		}
	case len(syms) > len(st.columns):
		return kerrors.New(kerrors.ErrCodeTooManyKeysyms,
			"keycode %d: %d keysyms but only %d columns selected", code, len(syms), len(st.columns))
	default:
		for i, sym := range syms {
			st.b.Set(code, st.columns[i], sym)
		}
	}
	return nil
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
