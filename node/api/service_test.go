package api_test

import (
	"context"
	"net/http"

	"chainspace.io/ledger/chain"
	"chainspace.io/ledger/consensus"
	"chainspace.io/ledger/network"
	"chainspace.io/ledger/node/api"
	ledgerMocks "chainspace.io/ledger/node/api/mocks"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
)

func strp(s string) *string     { return &s }
func floatp(f float64) *float64 { return &f }

var _ = Describe("Service", func() {
	var ledger *ledgerMocks.Ledger
	var srv api.Service

	BeforeEach(func() {
		ledger = &ledgerMocks.Ledger{}
		srv = api.NewService(ledger)
	})

	Describe("Chain", func() {
		It("should export the ledger's chain", func() {
			blocks := []*chain.Block{{Index: 1}, {Index: 2}}
			ledger.On("ExportChain").Return(chain.Export{Chain: blocks, Length: 2})

			res, status, err := srv.Chain()
			Expect(err).To(BeNil())
			Expect(status).To(Equal(http.StatusOK))
			Expect(res.Length).To(Equal(2))
			Expect(res.Chain).To(Equal(blocks))
		})
	})

	Describe("Mine", func() {
		Context("when the ledger mines a block", func() {
			block := &chain.Block{
				Index:        2,
				Transactions: []chain.Transaction{chain.Reward("node-a")},
				Proof:        35293,
				PreviousHash: "abc",
			}

			BeforeEach(func() {
				ledger.On("ID").Return("node-a")
				ledger.On("MineNextBlock", mock.Anything, "node-a").Return(block, nil)
			})

			It("should credit the node and describe the block", func() {
				res, status, err := srv.Mine(context.Background())
				Expect(err).To(BeNil())
				Expect(status).To(Equal(http.StatusOK))
				Expect(res.Message).To(Equal("New Block Forged"))
				Expect(res.Index).To(Equal(2))
				Expect(res.Proof).To(Equal(int64(35293)))
				Expect(res.PreviousHash).To(Equal("abc"))
				Expect(res.Transactions).To(Equal(block.Transactions))
			})
		})

		Context("when mining is cancelled", func() {
			BeforeEach(func() {
				ledger.On("ID").Return("node-a")
				ledger.On("MineNextBlock", mock.Anything, "node-a").Return(nil, context.Canceled)
			})

			It("should process the error and correct http status", func() {
				res, status, err := srv.Mine(context.Background())
				Expect(res).To(BeNil())
				Expect(status).To(Equal(http.StatusServiceUnavailable))
				Expect(err).To(Equal(context.Canceled))
			})
		})
	})

	Describe("NewTransaction", func() {
		It("should submit a complete transaction", func() {
			ledger.On("SubmitTransaction", "a", "b", 5.0).Return(3)

			res, status, err := srv.NewTransaction(&api.Transaction{
				Sender: strp("a"), Recipient: strp("b"), Amount: floatp(5),
			})
			Expect(err).To(BeNil())
			Expect(status).To(Equal(http.StatusCreated))
			Expect(res.Message).To(Equal("Transaction will be added to Block 3"))
		})

		It("should reject a transaction with a missing field", func() {
			for _, tx := range []*api.Transaction{
				nil,
				{Recipient: strp("b"), Amount: floatp(5)},
				{Sender: strp("a"), Amount: floatp(5)},
				{Sender: strp("a"), Recipient: strp("b")},
			} {
				res, status, err := srv.NewTransaction(tx)
				Expect(res).To(BeNil())
				Expect(status).To(Equal(http.StatusBadRequest))
				Expect(err).To(Equal(api.ErrMalformedTransaction))
			}
			ledger.AssertNotCalled(GinkgoT(), "SubmitTransaction", mock.Anything, mock.Anything, mock.Anything)
		})
	})

	Describe("RegisterNodes", func() {
		Context("with valid addresses", func() {
			BeforeEach(func() {
				ledger.On("RegisterPeer", "http://node2:5000").Return(nil)
				ledger.On("RegisterPeer", "node3:5000").Return(nil)
				ledger.On("Peers").Return([]string{"http://node2:5000", "node3:5000"})
			})

			It("should register every address", func() {
				res, status, err := srv.RegisterNodes(&api.RegisterNodesRequest{
					Nodes: []string{"http://node2:5000", "node3:5000"},
				})
				Expect(err).To(BeNil())
				Expect(status).To(Equal(http.StatusCreated))
				Expect(res.Message).To(Equal("New nodes have been added"))
				Expect(res.TotalNodes).To(Equal([]string{"http://node2:5000", "node3:5000"}))
				ledger.AssertNumberOfCalls(GinkgoT(), "RegisterPeer", 2)
			})
		})

		It("should reject an empty list", func() {
			res, status, err := srv.RegisterNodes(&api.RegisterNodesRequest{})
			Expect(res).To(BeNil())
			Expect(status).To(Equal(http.StatusBadRequest))
			Expect(err).To(Equal(api.ErrNoNodes))
		})

		It("should register nothing if any address is invalid", func() {
			res, status, err := srv.RegisterNodes(&api.RegisterNodesRequest{
				Nodes: []string{"http://node2:5000", "http://"},
			})
			Expect(res).To(BeNil())
			Expect(status).To(Equal(http.StatusBadRequest))
			Expect(errors.Cause(err)).To(Equal(network.ErrInvalidPeerAddress))
			ledger.AssertNotCalled(GinkgoT(), "RegisterPeer", mock.Anything)
		})
	})

	Describe("Resolve", func() {
		blocks := []*chain.Block{{Index: 1}, {Index: 2}}

		It("should report a replaced chain under new_chain", func() {
			ledger.On("RunConsensus", mock.Anything).Return(consensus.Result{Chain: blocks, Replaced: true})

			res, status, err := srv.Resolve(context.Background())
			Expect(err).To(BeNil())
			Expect(status).To(Equal(http.StatusOK))
			Expect(res.Message).To(Equal("Our chain was replaced"))
			Expect(res.NewChain).To(Equal(blocks))
			Expect(res.Chain).To(BeNil())
		})

		It("should report an authoritative chain under chain", func() {
			ledger.On("RunConsensus", mock.Anything).Return(consensus.Result{Chain: blocks})

			res, status, err := srv.Resolve(context.Background())
			Expect(err).To(BeNil())
			Expect(status).To(Equal(http.StatusOK))
			Expect(res.Message).To(Equal("Our chain is authoritative"))
			Expect(res.Chain).To(Equal(blocks))
			Expect(res.NewChain).To(BeNil())
		})
	})
})
