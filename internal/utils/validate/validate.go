package validate

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/supchaser/imagegrid/internal/utils/errs"
)

var allowedSchemes = map[string]bool{
	"http":  true,
	"https": true,
}

func ValidateURLCount(count, maxURLs int) error {
	if count == 0 {
		return errs.ErrNoURLs
	}
	if maxURLs > 0 && count > maxURLs {
		return fmt.Errorf("%w: got %d, max %d", errs.ErrTooManyURLs, count, maxURLs)
	}

	return nil
}

func ValidateURL(raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrInvalidURL, err)
	}
	if _, ok := allowedSchemes[strings.ToLower(u.Scheme)]; !ok || u.Host == "" {
		return fmt.Errorf("%w: %q", errs.ErrInvalidURL, raw)
	}

	return nil
}

func ValidateURLs(urls []string, maxURLs int) error {
	if err := ValidateURLCount(len(urls), maxURLs); err != nil {
		return err
	}
	for _, u := range urls {
		if err := ValidateURL(u); err != nil {
			return err
		}
	}

	return nil
}
