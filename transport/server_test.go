// Copyright 2021 The axios Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transport

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gogama/axios/cookie"
	"github.com/gogama/axios/request"
	"github.com/gogama/axios/urlutil"
	"github.com/stretchr/testify/suite"
)

type echo struct {
	Method string              `json:"method"`
	Path   string              `json:"path"`
	Query  string              `json:"query"`
	Header map[string][]string `json:"header"`
	Body   string              `json:"body"`
	Form   map[string][]string `json:"form,omitempty"`
}

func echoHandler(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/slow":
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
		return
	case "/missing":
		http.NotFound(w, r)
		return
	}
	e := echo{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.RawQuery,
		Header: r.Header,
	}
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		e.Form = r.MultipartForm.Value
	} else {
		b, _ := io.ReadAll(r.Body)
		e.Body = string(b)
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(e)
}

type ServerSuite struct {
	suite.Suite
	server  *httptest.Server
	adapter *Adapter
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}

func (s *ServerSuite) SetupTest() {
	s.server = httptest.NewServer(http.HandlerFunc(echoHandler))
	origin, err := urlutil.ParseOrigin(s.server.URL)
	s.Require().NoError(err)
	jar, err := cookie.NewJar(s.server.URL)
	s.Require().NoError(err)
	jar.Set(&http.Cookie{Name: "XSRF-TOKEN", Value: "tok%20en"})
	s.adapter = &Adapter{HTTPDoer: s.server.Client(), Cookies: jar, Origin: origin}
}

func (s *ServerSuite) TearDownTest() {
	s.server.Close()
}

func (s *ServerSuite) send(c *request.Config) (echo, *request.Response) {
	if c.XSRFCookieName == "" {
		c.XSRFCookieName = "XSRF-TOKEN"
		c.XSRFHeaderName = "X-XSRF-TOKEN"
	}
	c.ResponseType = request.ResponseJSON
	res, err := s.adapter.Send(context.Background(), c)
	s.Require().NoError(err)
	b, err := json.Marshal(res.Data)
	s.Require().NoError(err)
	var e echo
	s.Require().NoError(json.Unmarshal(b, &e))
	return e, res
}

func (s *ServerSuite) TestGet() {
	e, res := s.send(&request.Config{URL: s.server.URL + "/a?b=c"})

	s.Equal(200, res.Status)
	s.Equal("OK", res.StatusText)
	s.Equal("application/json", res.Headers.Get("content-type"))
	s.Equal("GET", e.Method)
	s.Equal("/a", e.Path)
	s.Equal("b=c", e.Query)
	s.Equal("", e.Body)
	s.Equal([]string{"tok en"}, e.Header["X-Xsrf-Token"])
}

func (s *ServerSuite) TestRelativeURL() {
	e, _ := s.send(&request.Config{URL: "/rel", Method: request.Delete})

	s.Equal("DELETE", e.Method)
	s.Equal("/rel", e.Path)
	s.Equal([]string{"tok en"}, e.Header["X-Xsrf-Token"])
}

func (s *ServerSuite) TestPostForm() {
	e, _ := s.send(&request.Config{
		URL:    s.server.URL,
		Method: request.Post,
		Data:   url.Values{"x": {"1"}, "y": {"a b"}},
	})

	s.Equal("POST", e.Method)
	s.Equal("x=1&y=a+b", e.Body)
	s.Equal([]string{formContentType}, e.Header["Content-Type"])
}

func (s *ServerSuite) TestPostMultipart() {
	f := &request.FormData{}
	f.Append("name", "axios")
	f.AppendFile("file", "a.txt", strings.NewReader("contents"))

	e, _ := s.send(&request.Config{
		URL:     s.server.URL,
		Method:  request.Post,
		Data:    f,
		Headers: request.HeaderSet{Header: http.Header{"Content-Type": {"application/json"}}},
	})

	s.Equal([]string{"axios"}, e.Form["name"])
	s.Require().Len(e.Header["Content-Type"], 1)
	s.True(strings.HasPrefix(e.Header["Content-Type"][0], "multipart/form-data; boundary="))
}

func (s *ServerSuite) TestCrossOriginOmitsXSRF() {
	origin, err := urlutil.ParseOrigin("http://elsewhere.example")
	s.Require().NoError(err)
	s.adapter.Origin = origin

	e, _ := s.send(&request.Config{URL: s.server.URL})

	s.NotContains(e.Header, "X-Xsrf-Token")
}

func (s *ServerSuite) TestStatus() {
	_, err := s.adapter.Send(context.Background(), &request.Config{URL: s.server.URL + "/missing"})

	var e *request.Error
	s.Require().ErrorAs(err, &e)
	s.Equal("Request failed with status code 404", e.Message)
	s.Equal(404, e.Response.Status)
	s.Equal("404 page not found\n", e.Response.Data)
}

func (s *ServerSuite) TestTimeout() {
	_, err := s.adapter.Send(context.Background(), &request.Config{
		URL:     s.server.URL + "/slow",
		Timeout: 50 * time.Millisecond,
	})

	s.EqualError(err, "timeout of 50ms exceeded")
	s.Equal(request.Timeout, request.KindOf(err))
}

func (s *ServerSuite) TestNetworkError() {
	u := s.server.URL
	s.server.Close()

	_, err := s.adapter.Send(context.Background(), &request.Config{URL: u})

	s.EqualError(err, "Network Error")
	s.Equal(request.Network, request.KindOf(err))
}
