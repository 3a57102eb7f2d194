package rest

import (
	"bytes"
	"context"
	"net"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"chainspace.io/ledger/chain"
	"chainspace.io/ledger/config"
	"chainspace.io/ledger/freeport"
	"chainspace.io/ledger/node/api/mocks"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, maxPayload config.ByteSize) (*httptest.Server, *mocks.Ledger) {
	gin.SetMode("test")
	ledger := &mocks.Ledger{}
	s := New(&Config{Ledger: ledger, MaxPayload: maxPayload})
	srv := httptest.NewServer(s.Handler())
	t.Cleanup(srv.Close)
	return srv, ledger
}

func TestChainRoute(t *testing.T) {
	srv, ledger := newTestServer(t, 0)
	ledger.On("ExportChain").Return(chain.Export{Chain: []*chain.Block{{Index: 1, PreviousHash: "1"}}, Length: 1})

	res, err := http.Get(srv.URL + "/chain")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
	body, err := ioutil.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"length":1`)
	assert.Contains(t, string(body), `"previous_hash":"1"`)
}

func TestSwaggerDoc(t *testing.T) {
	srv, _ := newTestServer(t, 0)
	res, err := http.Get(srv.URL + "/swagger/doc.json")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
	body, err := ioutil.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"/transactions/new"`)
	assert.Contains(t, string(body), `"title": "Ledger API"`)
}

func TestPayloadLimit(t *testing.T) {
	srv, ledger := newTestServer(t, 64)
	nodes := `{"nodes":["` + strings.Repeat("a", 128) + `:5000"]}`
	res, err := http.Post(srv.URL+"/nodes/register", "application/json", bytes.NewBufferString(nodes))
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	ledger.AssertNotCalled(t, "RegisterPeer", mock.Anything)
}

func TestStartPortInUse(t *testing.T) {
	gin.SetMode("test")
	port, err := freeport.TCP("")
	require.NoError(t, err)

	first := New(&Config{Ledger: &mocks.Ledger{}, Port: port})
	require.NoError(t, first.Start())
	defer first.Shutdown(context.Background())

	second := New(&Config{Ledger: &mocks.Ledger{}, Port: port})
	err = second.Start()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rest: unable to listen on port")
	_, ok := errors.Cause(err).(*net.OpError)
	assert.True(t, ok, "expected the listen error to be preserved, got %T", errors.Cause(err))
	assert.NoError(t, second.Shutdown(context.Background()))
}
