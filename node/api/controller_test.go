package api_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/ioutil"
	"net/http"
	"net/http/httptest"

	"chainspace.io/ledger/chain"
	"chainspace.io/ledger/node/api"
	serviceMocks "chainspace.io/ledger/node/api/mocks"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/mock"
)

func readBody(res *http.Response, out interface{}) {
	body, bodyErr := ioutil.ReadAll(res.Body)
	Expect(bodyErr).To(BeNil())
	res.Body.Close()
	Expect(json.Unmarshal(body, out)).To(Succeed())
}

func postJSON(url string, body string) *http.Response {
	res, err := http.Post(url, "application/json", bytes.NewBufferString(body))
	Expect(err).To(BeNil())
	return res
}

var _ = Describe("Controller", func() {
	var ctrl api.Controller
	var errorMsg string = "boom"
	var srvMock *serviceMocks.Service
	var srvr *httptest.Server

	BeforeEach(func() {
		gin.SetMode("test")

		srvMock = &serviceMocks.Service{}
		ctrl = api.NewWithService(srvMock)

		router := gin.New()
		ctrl.RegisterRoutes(router)
		srvr = httptest.NewServer(router)
	})

	AfterEach(func() {
		srvr.Close()
	})

	Describe("/chain", func() {
		It("should return the chain and its length", func() {
			blocks := []*chain.Block{{Index: 1, Transactions: []chain.Transaction{}, Proof: 100, PreviousHash: "1"}}
			srvMock.On("Chain").Return(&api.ChainResponse{Chain: blocks, Length: 1}, http.StatusOK, nil)

			res, resErr := http.Get(srvr.URL + "/chain")
			Expect(resErr).To(BeNil())
			Expect(res.StatusCode).To(Equal(http.StatusOK))

			apiResponse := api.ChainResponse{}
			readBody(res, &apiResponse)
			Expect(apiResponse.Length).To(Equal(1))
			Expect(apiResponse.Chain).To(HaveLen(1))
			Expect(apiResponse.Chain[0].PreviousHash).To(Equal("1"))
		})
	})

	Describe("/mine", func() {
		Context("when mining succeeds", func() {
			BeforeEach(func() {
				srvMock.On("Mine", mock.Anything).Return(&api.MineResponse{
					Message:      "New Block Forged",
					Index:        2,
					Transactions: []chain.Transaction{chain.Reward("node-a")},
					Proof:        35293,
					PreviousHash: "abc",
				}, http.StatusOK, nil)
			})

			It("should describe the new block", func() {
				res, resErr := http.Get(srvr.URL + "/mine")
				Expect(resErr).To(BeNil())
				Expect(res.StatusCode).To(Equal(http.StatusOK))

				apiResponse := api.MineResponse{}
				readBody(res, &apiResponse)
				Expect(apiResponse.Index).To(Equal(2))
				Expect(apiResponse.Proof).To(Equal(int64(35293)))
				Expect(apiResponse.PreviousHash).To(Equal("abc"))
				Expect(apiResponse.Transactions).To(Equal([]chain.Transaction{chain.Reward("node-a")}))
			})
		})

		Context("when mining fails", func() {
			BeforeEach(func() {
				srvMock.On("Mine", mock.Anything).Return(nil, http.StatusServiceUnavailable, errors.New(errorMsg))
			})

			It("should return an error", func() {
				res, resErr := http.Get(srvr.URL + "/mine")
				Expect(resErr).To(BeNil())
				Expect(res.StatusCode).To(Equal(http.StatusServiceUnavailable))

				apiResponse := api.Error{}
				readBody(res, &apiResponse)
				Expect(apiResponse.Error).To(Equal(errorMsg))
			})
		})
	})

	Describe("/transactions/new", func() {
		Context("with a complete transaction", func() {
			BeforeEach(func() {
				match := mock.MatchedBy(func(tx *api.Transaction) bool {
					return tx.Sender != nil && *tx.Sender == "a" &&
						tx.Recipient != nil && *tx.Recipient == "b" &&
						tx.Amount != nil && *tx.Amount == 0
				})
				srvMock.On("NewTransaction", match).Return(
					&api.MessageResponse{Message: "Transaction will be added to Block 2"}, http.StatusCreated, nil)
			})

			It("should accept a zero amount", func() {
				res := postJSON(srvr.URL+"/transactions/new", `{"sender":"a","recipient":"b","amount":0}`)
				Expect(res.StatusCode).To(Equal(http.StatusCreated))

				apiResponse := api.MessageResponse{}
				readBody(res, &apiResponse)
				Expect(apiResponse.Message).To(Equal("Transaction will be added to Block 2"))
			})
		})

		Context("with a missing field", func() {
			BeforeEach(func() {
				srvMock.On("NewTransaction", mock.Anything).Return(nil, http.StatusBadRequest, api.ErrMalformedTransaction)
			})

			It("should return a bad request", func() {
				res := postJSON(srvr.URL+"/transactions/new", `{"sender":"a","recipient":"b"}`)
				Expect(res.StatusCode).To(Equal(http.StatusBadRequest))

				apiResponse := api.Error{}
				readBody(res, &apiResponse)
				Expect(apiResponse.Error).To(Equal(api.ErrMalformedTransaction.Error()))
			})
		})

		Context("with a body that isn't JSON", func() {
			It("should return a bad request without calling the service", func() {
				res := postJSON(srvr.URL+"/transactions/new", `sender=a`)
				Expect(res.StatusCode).To(Equal(http.StatusBadRequest))

				apiResponse := api.Error{}
				readBody(res, &apiResponse)
				Expect(apiResponse.Error).To(Equal(api.ErrMalformedTransaction.Error()))
				srvMock.AssertNotCalled(GinkgoT(), "NewTransaction", mock.Anything)
			})
		})
	})

	Describe("/nodes/register", func() {
		Context("with a list of nodes", func() {
			BeforeEach(func() {
				req := &api.RegisterNodesRequest{Nodes: []string{"http://node2:5000"}}
				srvMock.On("RegisterNodes", req).Return(&api.RegisterNodesResponse{
					Message:    "New nodes have been added",
					TotalNodes: []string{"http://node2:5000"},
				}, http.StatusCreated, nil)
			})

			It("should list the known nodes", func() {
				res := postJSON(srvr.URL+"/nodes/register", `{"nodes":["http://node2:5000"]}`)
				Expect(res.StatusCode).To(Equal(http.StatusCreated))

				apiResponse := api.RegisterNodesResponse{}
				readBody(res, &apiResponse)
				Expect(apiResponse.TotalNodes).To(Equal([]string{"http://node2:5000"}))
			})
		})

		Context("without nodes", func() {
			BeforeEach(func() {
				srvMock.On("RegisterNodes", mock.Anything).Return(nil, http.StatusBadRequest, api.ErrNoNodes)
			})

			It("should return a bad request", func() {
				res := postJSON(srvr.URL+"/nodes/register", `{}`)
				Expect(res.StatusCode).To(Equal(http.StatusBadRequest))

				apiResponse := api.Error{}
				readBody(res, &apiResponse)
				Expect(apiResponse.Error).To(Equal(api.ErrNoNodes.Error()))
			})
		})
	})

	Describe("/nodes/resolve", func() {
		It("should use the new_chain key when the chain was replaced", func() {
			blocks := []*chain.Block{{Index: 1}, {Index: 2}}
			srvMock.On("Resolve", mock.Anything).Return(&api.ResolveResponse{
				Message:  "Our chain was replaced",
				NewChain: blocks,
			}, http.StatusOK, nil)

			res, resErr := http.Get(srvr.URL + "/nodes/resolve")
			Expect(resErr).To(BeNil())
			Expect(res.StatusCode).To(Equal(http.StatusOK))

			raw := map[string]interface{}{}
			readBody(res, &raw)
			Expect(raw).To(HaveKey("new_chain"))
			Expect(raw).NotTo(HaveKey("chain"))
			Expect(raw["message"]).To(Equal("Our chain was replaced"))
		})
	})
})
