package template

import (
	"regexp"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// placeholderPattern detects the placeholders used by client display templates
// ({0}, {1}) and by stat templates (#).
var placeholderPattern = regexp.MustCompile(`\{([0-9]+)\}|#`)

// numberPattern is the capture used for a # placeholder.
const numberPattern = `([+-]?[0-9]+(?:\.[0-9]+)?)`

const cacheSize = 4096

// patterns caches compiled display templates. Stat tables are compiled once
// by their owner through New and never pass through here.
var patterns *lru.Cache[string, *Pattern]

func init() {
	c, err := lru.New[string, *Pattern](cacheSize)
	if err != nil {
		panic(err)
	}
	patterns = c
}

// slot describes one capture group of a compiled template.
type slot struct {
	number bool
	index  int
}

// Pattern is a compiled display or stat template.
type Pattern struct {
	source string
	re     *regexp.Regexp
	slots  []slot
	args   int
}

// Format substitutes {N} placeholders with args[N]. Placeholders without an
// argument are left untouched, so a template can be filled in stages.
func Format(tpl string, args ...string) string {
	if !strings.Contains(tpl, "{") {
		return tpl
	}
	return placeholderPattern.ReplaceAllStringFunc(tpl, func(m string) string {
		if m == "#" {
			return m
		}
		n, err := strconv.Atoi(m[1 : len(m)-1])
		if err != nil || n >= len(args) {
			return m
		}
		return args[n]
	})
}

// Compile returns the anchored pattern for tpl, served from the shared cache.
func Compile(tpl string) *Pattern {
	if p, ok := patterns.Get(tpl); ok {
		return p
	}
	p := compile(tpl)
	patterns.Add(tpl, p)
	return p
}

// New compiles tpl without touching the shared cache.
func New(tpl string) *Pattern { return compile(tpl) }

func compile(tpl string) *Pattern {
	var (
		b     strings.Builder
		slots []slot
		args  int
		last  int
	)
	b.WriteString("^")
	for _, loc := range placeholderPattern.FindAllStringSubmatchIndex(tpl, -1) {
		b.WriteString(regexp.QuoteMeta(tpl[last:loc[0]]))
		last = loc[1]

		if loc[2] < 0 {
			b.WriteString(numberPattern)
			slots = append(slots, slot{number: true})
			continue
		}
		n, _ := strconv.Atoi(tpl[loc[2]:loc[3]])
		b.WriteString("(.+?)")
		slots = append(slots, slot{index: n})
		if n+1 > args {
			args = n + 1
		}
	}
	b.WriteString(regexp.QuoteMeta(tpl[last:]))
	b.WriteString("$")

	return &Pattern{
		source: tpl,
		re:     regexp.MustCompile(b.String()),
		slots:  slots,
		args:   args,
	}
}

// Source returns the template text the pattern was compiled from.
func (p *Pattern) Source() string { return p.source }

// Args matches s and returns the text captured by each {N} placeholder,
// indexed by N.
func (p *Pattern) Args(s string) ([]string, bool) {
	m := p.re.FindStringSubmatch(s)
	if m == nil {
		return nil, false
	}
	out := make([]string, p.args)
	for i, sl := range p.slots {
		if !sl.number {
			out[sl.index] = m[i+1]
		}
	}
	return out, true
}

// Values matches s and returns the numbers captured by # placeholders in
// template order.
func (p *Pattern) Values(s string) ([]float64, bool) {
	m := p.re.FindStringSubmatch(s)
	if m == nil {
		return nil, false
	}
	var out []float64
	for i, sl := range p.slots {
		if !sl.number {
			continue
		}
		v, err := strconv.ParseFloat(m[i+1], 64)
		if err != nil {
			return nil, false
		}
		out = append(out, v)
	}
	return out, true
}
