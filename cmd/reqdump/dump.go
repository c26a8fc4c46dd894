// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/gogama/httpreq/request"
	"github.com/logrusorgru/aurora"
	"github.com/pborman/getopt"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// UsageError is returned when the command line is malformed.
type UsageError string

func (e UsageError) Error() string {
	return string(e)
}

type environment struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	enableColor bool
}

type options struct {
	body    string
	noColor bool
	verbose bool
}

// Main parses args (including the program name), builds the request
// they describe, and prints it to env.stdout.
func Main(args []string, env environment) error {
	flagSet, opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	logger := logrus.New()
	logger.Out = env.stderr
	if opts.verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	r, err := buildRequest(flagSet.Args(), opts.body, env.stdin, logger)
	if _, ok := errors.Cause(err).(UsageError); ok {
		flagSet.PrintUsage(env.stderr)
		return err
	}
	if err != nil {
		return err
	}

	w := bufio.NewWriter(env.stdout)
	defer w.Flush()
	return newPrinter(w, env.enableColor && !opts.noColor).print(r)
}

func parseFlags(args []string) (*getopt.Set, options, error) {
	var opts options
	flagSet := getopt.New()
	flagSet.SetParameters("[METHOD] URL [NAME:VALUE ...]")
	flagSet.StringVarLong(&opts.body, "body", 'd', "request body; @file reads a file, - reads stdin")
	flagSet.BoolVarLong(&opts.noColor, "no-color", 0, "disable colored output")
	flagSet.BoolVarLong(&opts.verbose, "verbose", 'v', "log each build step to stderr")
	if err := flagSet.Getopt(args, nil); err != nil {
		return nil, options{}, UsageError(err.Error())
	}
	return flagSet, opts, nil
}

func buildRequest(positional []string, body string, stdin io.Reader, logger logrus.FieldLogger) (request.Request, error) {
	if len(positional) == 0 {
		return request.Request{}, UsageError("URL is required")
	}

	b := request.NewBuilder()
	if m, ok := request.ParseMethod(positional[0]); ok && len(positional) > 1 {
		b = b.Method(m)
		logger.WithField("method", m).Debug("set method")
		positional = positional[1:]
	} else {
		b = b.Method(request.MethodGet)
	}

	b = b.URL(positional[0])
	logger.WithField("url", positional[0]).Debug("set URL")

	for _, item := range positional[1:] {
		name, value, err := parseHeaderItem(item)
		if err != nil {
			return request.Request{}, err
		}
		b = b.Header(name, value)
		logger.WithFields(logrus.Fields{"name": name, "value": value}).Debug("add header")
	}

	s, err := readBody(body, stdin)
	if err != nil {
		return request.Request{}, err
	}
	if s != "" {
		b = b.Body(s)
		logger.WithField("bytes", len(s)).Debug("set body")
	}

	return b.Build(), nil
}

func parseHeaderItem(item string) (string, string, error) {
	i := strings.IndexByte(item, ':')
	if i <= 0 {
		return "", "", UsageError(fmt.Sprintf("invalid header item %q (expected NAME:VALUE)", item))
	}
	return item[:i], strings.TrimLeft(item[i+1:], " \t"), nil
}

func readBody(body string, stdin io.Reader) (string, error) {
	switch {
	case body == "-":
		s, err := request.BodyString(stdin)
		if err != nil {
			return "", errors.Wrap(err, "reading body from stdin")
		}
		return s, nil
	case strings.HasPrefix(body, "@"):
		f, err := os.Open(body[1:])
		if err != nil {
			return "", errors.Wrap(err, "opening body file")
		}
		s, err := request.BodyString(f)
		if err != nil {
			return "", errors.Wrapf(err, "reading body file '%s'", body[1:])
		}
		return s, nil
	default:
		return body, nil
	}
}

type palette struct {
	Method         aurora.Color
	Target         aurora.Color
	Proto          aurora.Color
	FieldName      aurora.Color
	FieldValue     aurora.Color
	FieldSeparator aurora.Color
}

var defaultPalette = palette{
	Method:         aurora.BrownFg | aurora.BoldFm,
	Target:         aurora.CyanFg,
	Proto:          aurora.BlueFg,
	FieldName:      aurora.GrayFg,
	FieldValue:     aurora.CyanFg,
	FieldSeparator: aurora.GrayFg,
}

type printer struct {
	w       io.Writer
	aurora  aurora.Aurora
	palette *palette
}

func newPrinter(w io.Writer, enableColor bool) *printer {
	return &printer{
		w:       w,
		aurora:  aurora.NewAurora(enableColor),
		palette: &defaultPalette,
	}
}

// print writes r as an HTTP/1.1 message. Headers are sorted by name
// and written with their names exactly as given.
func (p *printer) print(r request.Request) error {
	hr, err := r.ToHTTP(context.Background())
	if err != nil {
		return err
	}

	fmt.Fprintf(p.w, "%s %s %s\n",
		p.aurora.Colorize(hr.Method, p.palette.Method),
		p.aurora.Colorize(hr.URL.RequestURI(), p.palette.Target),
		p.aurora.Colorize("HTTP/1.1", p.palette.Proto))
	if _, ok := r.Header().Get("Host"); !ok && hr.Host != "" {
		p.field("Host", hr.Host)
	}
	pairs := r.Header().Pairs()
	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].Key < pairs[j].Key
	})
	for _, pair := range pairs {
		p.field(pair.Key, pair.Value)
	}
	fmt.Fprintln(p.w)

	if body := r.Body(); body != "" {
		fmt.Fprintln(p.w, body)
	}
	return nil
}

func (p *printer) field(name, value string) {
	fmt.Fprintf(p.w, "%s%s %s\n",
		p.aurora.Colorize(name, p.palette.FieldName),
		p.aurora.Colorize(":", p.palette.FieldSeparator),
		p.aurora.Colorize(value, p.palette.FieldValue))
}
