package chain

import (
	"time"
)

// Chain is the ordered sequence of blocks, starting from the genesis block.
// It only ever grows by SealBlock or is swapped wholesale by Replace.
//
// Chain does no locking of its own; callers must serialise access.
type Chain struct {
	blocks []*Block
	now    func() time.Time
	pool   *Pool
}

// New returns a chain containing only the genesis block. Sealed blocks take
// their transactions from the given pool.
func New(pool *Pool) *Chain {
	c := &Chain{
		now:  time.Now,
		pool: pool,
	}
	c.appendGenesis()
	return c
}

func (c *Chain) appendGenesis() {
	c.blocks = append(c.blocks, &Block{
		Index:        1,
		Timestamp:    c.now().UTC(),
		Transactions: []Transaction{},
		Proof:        GenesisProof,
		PreviousHash: GenesisPreviousHash,
	})
}

// Blocks returns a copy of the chain's block list.
func (c *Chain) Blocks() []*Block {
	blocks := make([]*Block, len(c.blocks))
	copy(blocks, c.blocks)
	return blocks
}

// Last returns the most recently appended block.
func (c *Chain) Last() *Block {
	if len(c.blocks) == 0 {
		panic(ErrEmptyChain)
	}
	return c.blocks[len(c.blocks)-1]
}

// Len returns the number of blocks in the chain.
func (c *Chain) Len() int {
	return len(c.blocks)
}

// Replace substitutes the chain's blocks with the given ones. The blocks are
// not validated here; that is the caller's job.
func (c *Chain) Replace(blocks []*Block) {
	if len(blocks) == 0 {
		panic(ErrEmptyChain)
	}
	c.blocks = make([]*Block, len(blocks))
	copy(c.blocks, blocks)
}

// SealBlock drains the pool into a new block carrying the given proof and
// appends it to the chain. If previousHash is empty, the digest of the
// current last block is used.
func (c *Chain) SealBlock(proof int64, previousHash string) *Block {
	if previousHash == "" {
		previousHash = Digest(c.Last())
	}
	block := &Block{
		Index:        len(c.blocks) + 1,
		Timestamp:    c.now().UTC(),
		Transactions: c.pool.DrainAll(),
		Proof:        proof,
		PreviousHash: previousHash,
	}
	c.blocks = append(c.blocks, block)
	return block
}
