// SPDX-FileCopyrightText: © 2026 PRIDE Archive Team - EMBL-EBI
//
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/pride-archive/pride-cli-sdk/sdk/config"
)

/* ------------ logging helpers (stderr) ------------ */

func Infof(format string, a ...any) {
	fmt.Fprintf(os.Stderr, "[INFO] "+format+"\n", a...)
}

func Warnf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, "[WARN] "+format+"\n", a...)
}

// Debugf is silent unless pride_debug is set (PRIDE_DEBUG env).
func Debugf(format string, a ...any) {
	if !viper.GetBool(DebugKey) {
		return
	}
	fmt.Fprintf(os.Stderr, "[DEBUG] "+format+"\n", a...)
}

/* ------------ single-line transfer progress ------------ */

type globalProgress struct {
	totalKnown bool
	totalBytes int64
	doneBytes  int64
	spinIdx    int
	lastTick   time.Time
}

var spinner = []rune{'|', '/', '-', '\\'}

func (gp *globalProgress) add(delta int64) {
	gp.doneBytes += delta
}

func (gp *globalProgress) human(n int64) string {
	const (
		KB = 1024
		MB = 1024 * KB
		GB = 1024 * MB
	)
	switch {
	case n >= GB:
		return fmt.Sprintf("%.2f GB", float64(n)/float64(GB))
	case n >= MB:
		return fmt.Sprintf("%.2f MB", float64(n)/float64(MB))
	case n >= KB:
		return fmt.Sprintf("%.2f KB", float64(n)/float64(KB))
	default:
		return fmt.Sprintf("%d B", n)
	}
}

func (gp *globalProgress) render(force bool) {
	// throttle to ~10 updates per second
	if !force && time.Since(gp.lastTick) < 100*time.Millisecond {
		return
	}
	gp.lastTick = time.Now()

	if gp.totalKnown && gp.totalBytes > 0 {
		pct := float64(gp.doneBytes) / float64(gp.totalBytes) * 100
		if gp.doneBytes > gp.totalBytes {
			gp.doneBytes = gp.totalBytes
			pct = 100
		}
		fmt.Fprintf(os.Stderr, "\rProgress: %6.2f%% (%s / %s)   ",
			pct, gp.human(gp.doneBytes), gp.human(gp.totalBytes))
	} else {
		ch := spinner[gp.spinIdx%len(spinner)]
		gp.spinIdx++
		fmt.Fprintf(os.Stderr, "\rProgress: [%c] %s transferred   ", ch, gp.human(gp.doneBytes))
	}
}

func (gp *globalProgress) done() {
	gp.render(true)
	fmt.Fprintln(os.Stderr)
}

// ConsoleProgressHook renders a single progress line on stderr for one
// transfer. Quiet mode still returns a hook, just one that does nothing,
// so callers never branch on nil.
func ConsoleProgressHook(quiet bool) *config.ProgressHook {
	if quiet {
		return &config.ProgressHook{}
	}

	gp := &globalProgress{}
	var prevWritten int64

	return &config.ProgressHook{
		OnStart: func(key string, total int64) {
			if total > 0 {
				gp.totalKnown = true
				gp.totalBytes = total
			}
		},
		OnProgress: func(key string, written, total int64) {
			delta := written - prevWritten
			if delta > 0 {
				gp.add(delta)
				gp.render(false)
			}
			prevWritten = written
		},
		OnDone: func(key string, total int64, took time.Duration) {
			if total > prevWritten {
				gp.add(total - prevWritten)
			}
			gp.render(true)
			gp.done()
		},
	}
}
