package agreement

import (
	"context"
	"sync"
)

var _ SignedCopyStore = &SignedCopyStoreMock{}

type SignedCopyStoreMock struct {
	PutFunc func(ctx context.Context, key string, body []byte, contentType string) error

	calls struct {
		Put []struct {
			Ctx         context.Context
			Key         string
			Body        []byte
			ContentType string
		}
	}
	lockPut sync.RWMutex
}

func (mock *SignedCopyStoreMock) Put(ctx context.Context, key string, body []byte, contentType string) error {
	if mock.PutFunc == nil {
		panic("SignedCopyStoreMock.PutFunc: method is nil but SignedCopyStore.Put was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Key         string
		Body        []byte
		ContentType string
	}{
		Ctx:         ctx,
		Key:         key,
		Body:        body,
		ContentType: contentType,
	}
	mock.lockPut.Lock()
	mock.calls.Put = append(mock.calls.Put, callInfo)
	mock.lockPut.Unlock()
	return mock.PutFunc(ctx, key, body, contentType)
}

func (mock *SignedCopyStoreMock) PutCalls() []struct {
	Ctx         context.Context
	Key         string
	Body        []byte
	ContentType string
} {
	mock.lockPut.RLock()
	calls := mock.calls.Put
	mock.lockPut.RUnlock()
	return calls
}
