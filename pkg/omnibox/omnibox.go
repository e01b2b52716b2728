// Package omnibox turns URL-bar input into a navigable URL.
//
// Input is first passed through an optional user script defining
//
//	function rewrite(input) { ... }
//
// whose string result replaces the input. The result then gets a scheme
// when it looks like a host name, or becomes a search when it does not.
package omnibox

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/dop251/goja"
	"github.com/rs/zerolog"
)

// DefaultSearchURL is used when no search template is configured.
const DefaultSearchURL = "https://duckduckgo.com/?q=%s"

// scriptTimeout bounds a single rewrite call.
const scriptTimeout = 100 * time.Millisecond

// Resolver resolves URL-bar input. It is not safe for concurrent use.
type Resolver struct {
	vm        *goja.Runtime
	rewrite   goja.Callable
	searchURL string
	log       zerolog.Logger
}

// New creates a resolver. script may be empty; when set it must define a
// rewrite function. searchURL must contain a single %s verb.
func New(script, searchURL string) (*Resolver, error) {
	if searchURL == "" {
		searchURL = DefaultSearchURL
	}
	if strings.Count(searchURL, "%s") != 1 {
		return nil, fmt.Errorf("search url %q must contain exactly one %%s", searchURL)
	}

	r := &Resolver{searchURL: searchURL, log: zerolog.Nop()}
	if script == "" {
		return r, nil
	}

	vm := goja.New()
	c := &consoleAPI{r: r}
	c.register(vm)

	if _, err := vm.RunString(script); err != nil {
		return nil, fmt.Errorf("omnibox script: %w", err)
	}
	fn, ok := goja.AssertFunction(vm.Get("rewrite"))
	if !ok {
		return nil, errors.New("omnibox script: rewrite is not a function")
	}
	r.vm = vm
	r.rewrite = fn
	return r, nil
}

// SetLogger configures the logger used for script diagnostics and console output.
func (r *Resolver) SetLogger(l zerolog.Logger) {
	r.log = l
}

// Resolve returns the URL to navigate to for input, or "" for blank input.
func (r *Resolver) Resolve(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	if r.rewrite != nil {
		input = r.applyScript(input)
	}

	switch {
	case hasScheme(input):
		return input
	case looksLikeHost(input):
		return "https://" + input
	default:
		return fmt.Sprintf(r.searchURL, url.QueryEscape(input))
	}
}

func (r *Resolver) applyScript(input string) string {
	timer := time.AfterFunc(scriptTimeout, func() {
		r.vm.Interrupt("rewrite timed out")
	})
	defer func() {
		timer.Stop()
		r.vm.ClearInterrupt()
	}()

	v, err := r.rewrite(goja.Undefined(), r.vm.ToValue(input))
	if err != nil {
		r.log.Warn().Err(err).Str("input", input).Msg("omnibox rewrite failed")
		return input
	}
	if goja.IsUndefined(v) || goja.IsNull(v) {
		return input
	}
	out := strings.TrimSpace(v.String())
	if out == "" {
		return input
	}
	return out
}

func hasScheme(s string) bool {
	if strings.Contains(s, "://") {
		return true
	}
	for _, p := range []string{"about:", "data:", "file:", "javascript:"} {
		if strings.HasPrefix(strings.ToLower(s), p) {
			return true
		}
	}
	return false
}

func looksLikeHost(s string) bool {
	if strings.ContainsAny(s, " \t") {
		return false
	}
	host := s
	if i := strings.IndexAny(host, "/?#"); i >= 0 {
		host = host[:i]
	}
	if h, _, ok := strings.Cut(host, ":"); ok {
		host = h
	}
	if host == "localhost" {
		return true
	}
	return strings.Contains(host, ".") && !strings.HasPrefix(host, ".") && !strings.HasSuffix(host, ".")
}
