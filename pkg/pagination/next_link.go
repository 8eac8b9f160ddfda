package pagination

import (
	"fmt"
	"net/url"
)

// NextCursorFromLink resolves a "next" link against base and returns the value of
// the given query parameter. The hub embeds its cursor in a full link rather than
// returning it bare, so the link has to be parsed as a URL.
//
// An empty href means there is no next page. A link without the parameter, or with
// an empty value, is also treated as the last page.
func NextCursorFromLink(base *url.URL, href, param string) (*string, error) {
	if href == "" {
		return nil, nil
	}

	ref, err := url.Parse(href)
	if err != nil {
		return nil, fmt.Errorf("parse next link %q: %w", href, err)
	}

	if base != nil {
		ref = base.ResolveReference(ref)
	}

	v := ref.Query().Get(param)
	if v == "" {
		return nil, nil
	}

	return &v, nil
}
