//
// Copyright (c) 2026 the cassandra-go-sdk authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 as shown at
//  https://www.apache.org/licenses/LICENSE-2.0
//

package cqldb

import (
	"fmt"
	"strings"

	"github.com/eperott/cassandra-go-sdk/cqldb/logger"
)

// logQueryWarnings forwards the winning attempt's server-supplied warnings
// to the client logger as a single line for the executed statement.
//
// The query text is truncated to the configured maximum length. Nothing is
// logged when the process-wide disable switch reads true; the switch is read
// here, at completion time, so toggling it takes effect on the next
// statement rather than being cached at client creation.
func (c *Client) logQueryWarnings(stmt *Statement, warnings []string) {
	if len(warnings) == 0 {
		return
	}

	if c.queryWarningsDisabled.Load() {
		return
	}

	c.logger.LogWithFn(logger.Warn, func() string {
		text := truncateQueryText(stmt.loggedText(), c.DefaultMaxLoggedQueryLength())
		return fmt.Sprintf("Query '%s' generated server side warning(s): %s",
			text, strings.Join(warnings, "; "))
	})
}

// truncateQueryText shortens the statement text to at most max characters.
func truncateQueryText(text string, max int) string {
	if max > 0 && len(text) > max {
		return text[:max]
	}
	return text
}
