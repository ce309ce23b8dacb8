package xsyslog

import (
	"strconv"
	"strings"
	"time"
)

// render substitutes the template's placeholder tokens in a single
// left-to-right scan. Recognized tokens:
//
//	%C  originating class: Event.SourceClass, else the resolved frame's
//	    receiver type, else the Unknown marker
//	%S  resolved subroutine name, else Unknown
//	%M  event message
//	%F  resolved source file base name, else Unknown
//	%L  resolved source line, else Unknown
//	%T  event timestamp, RFC 3339
//
// Any other %X token (and a trailing lone '%') is copied through verbatim.
// render performs no I/O.
func render(tpl string, ev Event, fr Frame, resolved bool) string {
	if tpl == "" {
		return ""
	}
	if !strings.ContainsRune(tpl, '%') {
		return tpl
	}

	var b strings.Builder
	b.Grow(len(tpl) + len(ev.Message))
	for i := 0; i < len(tpl); i++ {
		c := tpl[i]
		if c != '%' || i+1 == len(tpl) {
			b.WriteByte(c)
			continue
		}
		switch tpl[i+1] {
		case 'C':
			b.WriteString(className(ev, fr, resolved))
		case 'S':
			if resolved && fr.Subroutine != "" {
				b.WriteString(fr.Subroutine)
			} else {
				b.WriteString(Unknown)
			}
		case 'M':
			b.WriteString(ev.Message)
		case 'F':
			if resolved && fr.File != "" {
				b.WriteString(baseFile(fr.File))
			} else {
				b.WriteString(Unknown)
			}
		case 'L':
			if resolved {
				b.WriteString(strconv.Itoa(fr.Line))
			} else {
				b.WriteString(Unknown)
			}
		case 'T':
			b.WriteString(ev.At.Format(time.RFC3339))
		default:
			b.WriteByte('%')
			b.WriteByte(tpl[i+1])
		}
		i++
	}
	return b.String()
}

func className(ev Event, fr Frame, resolved bool) string {
	if ev.SourceClass != "" {
		return ev.SourceClass
	}
	if resolved && fr.Class != "" {
		return fr.Class
	}
	return Unknown
}

func baseFile(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}
