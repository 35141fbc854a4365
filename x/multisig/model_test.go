package multisig

import (
	"testing"

	"github.com/covault-io/covault"
	"github.com/covault-io/covault/coin"
	"github.com/covault-io/covault/covtest"
	"github.com/covault-io/covault/errors"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNewOwnerSet(t *testing.T) {
	Convey("Given a list of distinct valid owners", t, func() {
		owners := covtest.NewAddresses(3)

		Convey("any threshold within [1, n] is accepted", func() {
			for th := 1; th <= 3; th++ {
				set, err := NewOwnerSet(owners, th)
				So(err, ShouldBeNil)
				So(set.Threshold(), ShouldEqual, th)
				So(len(set.Owners()), ShouldEqual, 3)
			}
		})

		Convey("a zero threshold is rejected", func() {
			_, err := NewOwnerSet(owners, 0)
			So(errors.ErrInput.Is(err), ShouldBeTrue)
		})

		Convey("a threshold above the owner count is rejected", func() {
			_, err := NewOwnerSet(owners, 4)
			So(errors.ErrInput.Is(err), ShouldBeTrue)
		})

		Convey("membership is reported correctly", func() {
			set, err := NewOwnerSet(owners, 2)
			So(err, ShouldBeNil)
			for _, o := range owners {
				So(set.IsOwner(o), ShouldBeTrue)
			}
			So(set.IsOwner(covtest.NewAddress()), ShouldBeFalse)
		})

		Convey("the registry holds copies of the input", func() {
			set, err := NewOwnerSet(owners, 2)
			So(err, ShouldBeNil)
			owners[0][0]++
			So(set.IsOwner(owners[0]), ShouldBeFalse)

			got := set.Owners()
			got[1][0]++
			So(set.IsOwner(got[1]), ShouldBeFalse)
		})
	})

	Convey("Given defective owner lists", t, func() {
		Convey("an empty list is rejected", func() {
			_, err := NewOwnerSet(nil, 1)
			So(errors.ErrEmpty.Is(err), ShouldBeTrue)
		})

		Convey("more than the allowed maximum is rejected", func() {
			_, err := NewOwnerSet(covtest.NewAddresses(maxOwnersAllowed+1), 1)
			So(errors.ErrModel.Is(err), ShouldBeTrue)
		})

		Convey("a duplicate owner is rejected", func() {
			a := covtest.NewAddress()
			_, err := NewOwnerSet([]covault.Address{a, a}, 1)
			So(errors.ErrDuplicate.Is(err), ShouldBeTrue)
		})

		Convey("an invalid address is rejected with its position", func() {
			owners := []covault.Address{covtest.NewAddress(), {1, 2, 3}}
			_, err := NewOwnerSet(owners, 1)
			So(errors.ErrInput.Is(err), ShouldBeTrue)
			So(len(errors.FieldErrors(err, "Owners.1")), ShouldEqual, 1)
		})
	})
}

func TestTransactionValidate(t *testing.T) {
	Convey("Given a ledger record", t, func() {
		tx := Transaction{
			Destination: covtest.NewAddress(),
			Amount:      coin.NewCoin(1, 0, "VLT"),
		}

		Convey("a well formed record validates", func() {
			So(tx.Validate(), ShouldBeNil)
		})

		Convey("a zero amount is allowed", func() {
			tx.Amount = coin.Coin{}
			So(tx.Validate(), ShouldBeNil)
		})

		Convey("a negative amount is rejected", func() {
			tx.Amount = coin.NewCoin(-1, 0, "VLT")
			So(errors.ErrInput.Is(tx.Validate()), ShouldBeTrue)
		})

		Convey("a missing destination is rejected", func() {
			tx.Destination = nil
			So(errors.ErrEmpty.Is(tx.Validate()), ShouldBeTrue)
		})

		Convey("a negative confirmation count is rejected", func() {
			tx.Confirmations = -1
			So(errors.ErrModel.Is(tx.Validate()), ShouldBeTrue)
		})

		Convey("copies are independent", func() {
			tx.Payload = []byte{1, 2, 3}
			cpy := tx.Copy().(*Transaction)
			cpy.Payload[0] = 9
			cpy.Destination[0]++
			So(tx.Payload[0], ShouldEqual, byte(1))
			So(tx.Destination.Equals(cpy.Destination), ShouldBeFalse)
		})
	})
}

func TestApprovalValidate(t *testing.T) {
	Convey("Given approval records", t, func() {
		Convey("a confirmed approval validates", func() {
			a := Approval{Confirmed: true}
			So(a.Validate(), ShouldBeNil)
		})

		Convey("an unconfirmed approval is never persisted", func() {
			a := Approval{}
			So(errors.ErrModel.Is(a.Validate()), ShouldBeTrue)
		})
	})
}
