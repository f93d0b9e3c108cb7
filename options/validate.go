package options

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/timClicks/zombodb/errs"
)

// ValidateURL validates a url option value at block-construction time.
//
// Rules, checked in order:
//  1. The sentinel "default" passes.
//  2. A value not ending in a forward slash fails with
//     errs.ErrMissingTrailingSlash.
//  3. A value that does not parse as an absolute URL fails with
//     errs.ErrMalformedURL carrying the parser's message.
//
// No normalization or rewriting is performed; a passing value is stored
// verbatim. Validation runs only when a block is constructed; previously
// stored values are trusted on read.
func ValidateURL(raw string) error {
	if raw == DefaultURL {
		// "default" is a fine value
		return nil
	}

	if !strings.HasSuffix(raw, "/") {
		return errs.ErrMissingTrailingSlash
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrMalformedURL, err)
	}
	if !parsed.IsAbs() {
		return fmt.Errorf("%w: %q is not an absolute url", errs.ErrMalformedURL, raw)
	}

	return nil
}
