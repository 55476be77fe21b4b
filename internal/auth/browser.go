package auth

import (
	"context"
	"fmt"

	"github.com/browserutils/kooky"
	_ "github.com/browserutils/kooky/browser/all" // register all browser cookie stores
	"github.com/chromedp/cdproto/network"
)

// ImportFromBrowser reads an existing LinkedIn session from the cookie
// stores of installed browsers and persists it, so no interactive login is
// needed when the user is already signed in somewhere.
func (m *Manager) ImportFromBrowser(ctx context.Context) error {
	kookies, err := kooky.ReadCookies(ctx, kooky.Valid, kooky.DomainHasSuffix("linkedin.com"))
	if err != nil {
		return fmt.Errorf("failed to read browser cookies: %w", err)
	}

	cookies := make([]*network.Cookie, 0, len(kookies))
	hasSession := false
	for _, k := range kookies {
		if k.Name == sessionCookie && k.Value != "" {
			hasSession = true
		}
		cookies = append(cookies, &network.Cookie{
			Name:     k.Name,
			Value:    k.Value,
			Domain:   k.Domain,
			Path:     k.Path,
			Expires:  float64(k.Expires.Unix()),
			Secure:   k.Secure,
			HTTPOnly: k.HttpOnly,
		})
	}

	if !hasSession {
		return fmt.Errorf("no %s cookie found in any browser; log in to LinkedIn in a browser first", sessionCookie)
	}

	return m.cookieStore.Save(cookies)
}
