package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Controller is the ledger node controller
type Controller interface {
	RegisterRoutes(router *gin.Engine)
}

type controller struct {
	service Service
}

// New returns a new Controller for the given ledger
func New(ledger Ledger) Controller {
	return &controller{NewService(ledger)}
}

// NewWithService returns a new Controller
func NewWithService(service Service) Controller {
	return &controller{service}
}

func (controller *controller) RegisterRoutes(router *gin.Engine) {
	router.GET("/chain", controller.Chain)
	router.GET("/mine", controller.Mine)
	router.POST("/nodes/register", controller.RegisterNodes)
	router.GET("/nodes/resolve", controller.Resolve)
	router.POST("/transactions/new", controller.NewTransaction)
}

// Chain Returns the node's full chain
// @Summary Retrieve the full chain
// @Description Returns every block held by the node along with the chain length
// @ID getChain
// @Produce  json
// @Tags chain
// @Success 200 {object} api.ChainResponse
// @Router /chain [get]
func (controller *controller) Chain(c *gin.Context) {
	res, status, err := controller.service.Chain()
	if err != nil {
		c.JSON(status, Error{err.Error()})
		return
	}
	c.JSON(status, res)
}

// Mine Mines a new block
// @Summary Mine a new block
// @Description Solves the proof of work for the current tip and seals the pending transactions together with the mining reward
// @ID mine
// @Produce  json
// @Tags chain
// @Success 200 {object} api.MineResponse
// @Failure 503 {object} api.Error
// @Router /mine [get]
func (controller *controller) Mine(c *gin.Context) {
	res, status, err := controller.service.Mine(c.Request.Context())
	if err != nil {
		c.JSON(status, Error{err.Error()})
		return
	}
	c.JSON(status, res)
}

// NewTransaction Submits a transaction to the pool
// @Summary Submit a transaction
// @Description Adds a transaction to the pool of the next block
// @ID newTransaction
// @Accept  json
// @Produce  json
// @Tags transactions
// @Param   transaction      body   api.Transaction     true  "transaction"
// @Success 201 {object} api.MessageResponse
// @Failure 400 {object} api.Error
// @Router /transactions/new [post]
func (controller *controller) NewTransaction(c *gin.Context) {
	req := Transaction{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Error{ErrMalformedTransaction.Error()})
		return
	}
	res, status, err := controller.service.NewTransaction(&req)
	if err != nil {
		c.JSON(status, Error{err.Error()})
		return
	}
	c.JSON(status, res)
}

// RegisterNodes Registers peers
// @Summary Register peers
// @Description Adds the given addresses to the node's peer set
// @ID registerNodes
// @Accept  json
// @Produce  json
// @Tags nodes
// @Param   nodes      body   api.RegisterNodesRequest     true  "peer addresses"
// @Success 201 {object} api.RegisterNodesResponse
// @Failure 400 {object} api.Error
// @Router /nodes/register [post]
func (controller *controller) RegisterNodes(c *gin.Context) {
	req := RegisterNodesRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Error{ErrNoNodes.Error()})
		return
	}
	res, status, err := controller.service.RegisterNodes(&req)
	if err != nil {
		c.JSON(status, Error{err.Error()})
		return
	}
	c.JSON(status, res)
}

// Resolve Runs the consensus algorithm
// @Summary Resolve conflicts
// @Description Replaces the node's chain with the longest valid chain held by its peers
// @ID resolve
// @Produce  json
// @Tags nodes
// @Success 200 {object} api.ResolveResponse
// @Router /nodes/resolve [get]
func (controller *controller) Resolve(c *gin.Context) {
	res, status, err := controller.service.Resolve(c.Request.Context())
	if err != nil {
		c.JSON(status, Error{err.Error()})
		return
	}
	c.JSON(status, res)
}
