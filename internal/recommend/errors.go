// FinalProject - Movie Recommendation Service
// Copyright 2026 Rasec Faria (rasecfaria)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rasecfaria/FinalProject

package recommend

import "errors"

var (
	// ErrTitleNotFound is returned when the requested title has no row
	// in the trained model. A title can exist in the catalog and still
	// miss the collaborative model if nobody ever rated it.
	ErrTitleNotFound = errors.New("title not found")

	// ErrContentUnavailable is returned for content recommendations
	// when the catalog loaded in degraded mode (optional tables were
	// missing or unreadable).
	ErrContentUnavailable = errors.New("content recommendations unavailable")

	// ErrNoRecommendations is returned when a ranked result is empty,
	// so callers can distinguish it from an explicitly requested empty
	// list.
	ErrNoRecommendations = errors.New("no recommendations available")
)
