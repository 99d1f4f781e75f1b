package services

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/dmitrijs2005/jobmatch/internal/client/client"
)

// fakeAPI records requests and answers with canned payloads per endpoint name.
type fakeAPI struct {
	mu      sync.Mutex
	reqs    []*client.Request
	resp    map[string]any
	errs    map[string]error
	PingErr error
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{resp: map[string]any{}, errs: map[string]error{}}
}

func (f *fakeAPI) Do(_ context.Context, req *client.Request, out any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reqs = append(f.reqs, req)

	if err := f.errs[req.Endpoint.Name]; err != nil {
		return err
	}
	v, ok := f.resp[req.Endpoint.Name]
	if !ok || out == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

func (f *fakeAPI) Ping(context.Context) error { return f.PingErr }

func (f *fakeAPI) last() *client.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.reqs) == 0 {
		return nil
	}
	return f.reqs[len(f.reqs)-1]
}

func (f *fakeAPI) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.reqs)
}
