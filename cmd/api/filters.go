package main

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/farxc/bolsa_atleta_wrapper/internal/store"
)

func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			values = append(values, p)
		}
	}
	return values
}

// parseFilter builds the store filter from the request query string. The date
// and value restrictions are enabled by the presence of their parameters, so
// an absent bound never restricts anything.
func parseFilter(r *http.Request) (store.Filter, error) {
	q := r.URL.Query()

	var f store.Filter
	f.Categories = splitParam(q.Get("categories"))
	f.Modalities = splitParam(q.Get("modalities"))
	f.States = splitParam(q.Get("states"))

	if from, to := q.Get("date_from"), q.Get("date_to"); from != "" || to != "" {
		f.DateEnabled = true
		if from != "" {
			t, err := time.Parse("2006-01-02", from)
			if err != nil {
				return f, fmt.Errorf("invalid date_from %q", from)
			}
			f.DateStart = t
		}
		if to != "" {
			t, err := time.Parse("2006-01-02", to)
			if err != nil {
				return f, fmt.Errorf("invalid date_to %q", to)
			}
			f.DateEnd = t
		}
	}

	if min, max := q.Get("value_min"), q.Get("value_max"); min != "" || max != "" {
		f.ValueEnabled = true
		if min != "" {
			v, err := strconv.ParseFloat(min, 64)
			if err != nil {
				return f, fmt.Errorf("invalid value_min %q", min)
			}
			f.ValueMin = v
		}
		if max != "" {
			v, err := strconv.ParseFloat(max, 64)
			if err != nil {
				return f, fmt.Errorf("invalid value_max %q", max)
			}
			f.ValueMax = v
		}
	}

	return f, nil
}
