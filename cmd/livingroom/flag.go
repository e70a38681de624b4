package main

import (
	"fmt"
	"log/slog"
	"strings"
)

// logLevelFlag accepts slog level names in any case, with an optional
// offset such as "warn+2"
type logLevelFlag struct {
	value slog.Level
}

func (l *logLevelFlag) String() string {
	return l.value.String()
}

func (l *logLevelFlag) Set(value string) error {
	var v slog.Level
	if err := v.UnmarshalText([]byte(strings.TrimSpace(value))); err != nil {
		return fmt.Errorf("unknown log level %q", value)
	}
	l.value = v
	return nil
}
