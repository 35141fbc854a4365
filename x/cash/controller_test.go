package cash

import (
	"testing"

	"github.com/covault-io/covault/coin"
	"github.com/covault-io/covault/covtest"
	"github.com/covault-io/covault/errors"
	"github.com/covault-io/covault/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueCoins(t *testing.T) {
	ctrl := NewController(NewBucket())
	db := store.MemStore()
	addr := covtest.NewAddress()

	plus := coin.NewCoin(500, 1000, "VLT")
	minus := coin.NewCoin(-400, -600, "VLT")

	require.NoError(t, ctrl.IssueCoins(db, addr, plus))
	balance, err := ctrl.Balance(db, addr)
	require.NoError(t, err)
	assert.True(t, balance.Contains(plus))

	require.NoError(t, ctrl.IssueCoins(db, addr, minus))
	balance, err = ctrl.Balance(db, addr)
	require.NoError(t, err)
	assert.True(t, balance.Contains(coin.NewCoin(100, 400, "VLT")))

	// Issuing cannot overflow a wallet.
	err = ctrl.IssueCoins(db, addr, coin.NewCoin(coin.MaxInt, 0, "VLT"))
	assert.True(t, errors.ErrOverflow.Is(err), "%+v", err)
}

func TestMoveCoins(t *testing.T) {
	ctrl := NewController(NewBucket())
	db := store.MemStore()
	addrs := covtest.NewAddresses(3)
	alice, bob, carol := addrs[0], addrs[1], addrs[2]

	total := coin.NewCoin(10, 0, "VLT")
	half := coin.NewCoin(5, 0, "VLT")
	require.NoError(t, ctrl.IssueCoins(db, alice, total))

	// Cannot move from an empty wallet.
	err := ctrl.MoveCoins(db, bob, carol, half)
	assert.True(t, errors.ErrEmpty.Is(err), "%+v", err)

	// Cannot move more than the balance.
	err = ctrl.MoveCoins(db, alice, bob, coin.NewCoin(11, 0, "VLT"))
	assert.True(t, errors.ErrAmount.Is(err), "%+v", err)

	// Cannot move a currency that is not there.
	err = ctrl.MoveCoins(db, alice, bob, coin.NewCoin(1, 0, "BTC"))
	assert.True(t, errors.ErrAmount.Is(err), "%+v", err)

	// Zero and negative amounts are rejected.
	err = ctrl.MoveCoins(db, alice, bob, coin.NewCoin(0, 0, "VLT"))
	assert.True(t, errors.ErrInput.Is(err), "%+v", err)
	err = ctrl.MoveCoins(db, alice, bob, coin.NewCoin(-2, 0, "VLT"))
	assert.True(t, errors.ErrInput.Is(err), "%+v", err)

	// A proper transfer adjusts both balances.
	require.NoError(t, ctrl.MoveCoins(db, alice, bob, half))
	balance, err := ctrl.Balance(db, alice)
	require.NoError(t, err)
	assert.True(t, balance.Contains(half))
	assert.False(t, balance.Contains(total))
	balance, err = ctrl.Balance(db, bob)
	require.NoError(t, err)
	assert.True(t, balance.Contains(half))

	// Sending the full balance empties the wallet.
	require.NoError(t, ctrl.MoveCoins(db, alice, carol, half))
	balance, err = ctrl.Balance(db, alice)
	require.NoError(t, err)
	assert.True(t, balance.IsEmpty())
}

func TestBalanceMissingWallet(t *testing.T) {
	ctrl := NewController(NewBucket())
	db := store.MemStore()

	balance, err := ctrl.Balance(db, covtest.NewAddress())
	require.NoError(t, err)
	assert.Nil(t, balance)
}

func TestWalletBucketRoundTrip(t *testing.T) {
	bucket := NewBucket()
	db := store.MemStore()
	addr := covtest.NewAddress()

	obj, err := bucket.GetOrCreate(db, addr)
	require.NoError(t, err)
	require.NotNil(t, obj)
	assert.True(t, Coins(obj).IsEmpty())

	set := AsSet(obj)
	require.NoError(t, set.Add(coin.NewCoin(3, 0, "VLT")))
	require.NoError(t, bucket.Save(db, obj))

	loaded, err := bucket.Get(db, addr)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	coins, err := AsCoins(loaded)
	require.NoError(t, err)
	assert.True(t, coins.Contains(coin.NewCoin(3, 0, "VLT")))
}

func TestWalletWith(t *testing.T) {
	addr := covtest.NewAddress()
	obj, err := WalletWith(addr, coin.NewCoinp(1, 0, "BTC"), coin.NewCoinp(2, 0, "VLT"))
	require.NoError(t, err)
	require.NoError(t, obj.Validate())
	assert.Equal(t, 2, Coins(obj).Count())

	_, err = AsCoins(nil)
	assert.True(t, errors.ErrEmpty.Is(err))
}
