// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpreq

import (
	"github.com/sirupsen/logrus"
)

// LogHandler returns a handler which writes a structured log entry for
// each event to logger. Install it for every event to log the whole
// life of a send:
//
//	handlers := &httpreq.HandlerGroup{}
//	h := httpreq.LogHandler(logrus.StandardLogger())
//	for _, evt := range httpreq.Events() {
//		handlers.PushBack(evt, h)
//	}
//
// BeforeSend and BeforeReadBody are logged at debug level, AfterTimeout
// at warning level, and AfterSend at info level on success or error
// level on failure.
func LogHandler(logger logrus.FieldLogger) Handler {
	if logger == nil {
		panic("httpreq: nil logger")
	}

	return HandlerFunc(func(evt Event, e *Exchange) {
		entry := logger.WithFields(logrus.Fields{
			"event":  evt.Name(),
			"method": e.Request.Method().String(),
			"url":    e.Request.URL().String(),
		})
		switch evt {
		case BeforeSend:
			entry.WithField("headers", e.Request.Header().Len()).Debug("sending request")
		case BeforeReadBody:
			entry.WithField("status", e.StatusCode()).Debug("reading response body")
		case AfterTimeout:
			entry.WithError(e.Err).Warn("request timed out")
		case AfterSend:
			entry = entry.WithField("duration", e.Duration())
			if e.Err != nil {
				entry.WithError(e.Err).Error("request failed")
			} else {
				entry.WithFields(logrus.Fields{
					"status": e.StatusCode(),
					"bytes":  len(e.Body),
				}).Info("request completed")
			}
		}
	})
}
