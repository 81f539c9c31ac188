package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/clonelens/clonelens/internal/loader"
	"github.com/clonelens/clonelens/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const erc20ABI = `[
	{"type": "function", "name": "transfer", "inputs": [{"type": "address"}, {"type": "uint256"}]},
	{"type": "event", "name": "Transfer", "inputs": [{"type": "address"}, {"type": "address"}, {"type": "uint256"}]}
]`

func TestBuildContractProfile(t *testing.T) {
	profile, err := BuildContractProfile("tokens", "MyToken", "0xabc", []byte(erc20ABI))
	require.NoError(t, err)

	assert.Equal(t, "tokens", profile.Collection)
	assert.Equal(t, "MyToken", profile.Name)
	assert.Equal(t, "0xabc", profile.Address)
	assert.Equal(t, []string{"transfer(address,uint256)"}, profile.Functions)
	assert.Equal(t, []string{"Transfer(address,address,uint256)"}, profile.Events)
	assert.Equal(t, []string{"0xa9059cbb"}, profile.Selectors)
	assert.True(t, strings.HasPrefix(profile.Simhash64, "0x"))
	assert.Len(t, profile.Simhash64, 18)
}

func TestBuildContractProfileBadABI(t *testing.T) {
	_, err := BuildContractProfile("tokens", "x", "", []byte(`{"nope": true}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, loader.ErrUnrecognizedFormat)
}

func TestFetchABI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "contract", r.URL.Query().Get("module"))
		assert.Equal(t, "getabi", r.URL.Query().Get("action"))
		assert.Equal(t, "0xdead", r.URL.Query().Get("address"))
		assert.Equal(t, "k", r.URL.Query().Get("apikey"))
		w.Write([]byte(`{"status":"1","message":"OK","result":"[{\"type\":\"function\",\"name\":\"transfer\",\"inputs\":[{\"type\":\"address\"},{\"type\":\"uint256\"}]}]"}`))
	}))
	defer srv.Close()

	client := NewEtherscanClient(srv.URL, "k")
	body, err := client.FetchABI(context.Background(), "0xdead")
	require.NoError(t, err)

	members, err := loader.Parse(body)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "transfer", members[0].Name)
}

func TestFetchABIUnverifiedContract(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"0","message":"NOTOK","result":"Contract source code not verified"}`))
	}))
	defer srv.Close()

	client := NewEtherscanClient(srv.URL, "")
	_, err := client.FetchABI(context.Background(), "0xdead")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Contract source code not verified")
}

func TestFetchABIServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewEtherscanClient(srv.URL, "")
	_, err := client.FetchABI(context.Background(), "0xdead")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status code 500")
}

func TestProcessSubmissionRequiresABIOrAddress(t *testing.T) {
	svc := NewService(nil, nil)
	err := svc.ProcessSubmission(context.Background(), &models.Submission{Collection: "tokens", Name: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "neither abi nor address")
}
