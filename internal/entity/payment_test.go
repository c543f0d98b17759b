package entity_test

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/csob/internal/entity"
)

func TestNewPaymentRequest(t *testing.T) {
	t.Parallel()

	p, err := entity.NewPaymentRequest("00042", "hello", "customer-1")
	require.NoError(t, err)
	require.Equal(t, "00042", p.OrderNo)
	require.Equal(t, "customer-1", p.CustomerID)
	require.Equal(t, "hello", p.MerchantData())
	require.Empty(t, p.Cart())
}

func TestNewPaymentRequest_KeepsOrderNoVerbatim(t *testing.T) {
	t.Parallel()

	p, err := entity.NewPaymentRequest("not a number", "", "")
	require.NoError(t, err)
	require.Equal(t, "not a number", p.OrderNo)
	require.Empty(t, p.MerchantData())
}

func TestNewPaymentRequest_MerchantDataTooLong(t *testing.T) {
	t.Parallel()

	_, err := entity.NewPaymentRequest("1", strings.Repeat("x", 200), "")
	require.ErrorIs(t, err, entity.ErrInvalidInput)
}

func TestPaymentRequest_AddCartItem(t *testing.T) {
	t.Parallel()

	p, err := entity.NewPaymentRequest("1", "", "")
	require.NoError(t, err)

	require.NoError(t, p.AddCartItem("Shoes", "1", 1500, "Running shoes"))
	require.NoError(t, p.AddCartItem("Delivery", "2.5", 100, ""))

	cart := p.Cart()
	require.Len(t, cart, 2)
	require.Equal(t, "Shoes", cart[0].Name)
	require.Equal(t, "1", cart[0].Quantity.String())
	require.Equal(t, int64(1500), cart[0].Amount)
	require.Equal(t, "Running shoes", cart[0].Description)
	require.Equal(t, "Delivery", cart[1].Name)
	require.Equal(t, "2.5", cart[1].Quantity.String())
	require.Empty(t, cart[1].Description)
}

func TestPaymentRequest_AddCartItem_ThirdItem(t *testing.T) {
	t.Parallel()

	p, err := entity.NewPaymentRequest("1", "", "")
	require.NoError(t, err)

	require.NoError(t, p.AddCartItem("A", "1", 50, "d1"))
	require.NoError(t, p.AddCartItem("B", "2", 50, "d2"))

	err = p.AddCartItem("C", "1", 50, "d3")
	require.ErrorIs(t, err, entity.ErrStructuralLimit)
	require.Len(t, p.Cart(), 2)
}

func TestPaymentRequest_AddCartItem_InvalidQuantity(t *testing.T) {
	t.Parallel()

	for _, quantity := range []string{"0", "-1", "0.5", "abc", ""} {
		quantity := quantity
		t.Run(quantity, func(t *testing.T) {
			t.Parallel()

			p, err := entity.NewPaymentRequest("1", "", "")
			require.NoError(t, err)

			err = p.AddCartItem("A", quantity, 50, "")
			require.ErrorIs(t, err, entity.ErrInvalidInput)
			require.Empty(t, p.Cart())
		})
	}
}

func TestPaymentRequest_AddCartItem_Truncation(t *testing.T) {
	t.Parallel()

	p, err := entity.NewPaymentRequest("1", "", "")
	require.NoError(t, err)

	err = p.AddCartItem(
		"Premium leather wallet brown",
		"1",
		100,
		"A very long description that does not fit into forty characters",
	)
	require.NoError(t, err)

	item := p.Cart()[0]
	require.Equal(t, "Premium leather", item.Name)
	require.Equal(t, "A very long description that does not fi", item.Description)
}

func TestPaymentRequest_Cart_ReturnsCopy(t *testing.T) {
	t.Parallel()

	p, err := entity.NewPaymentRequest("1", "", "")
	require.NoError(t, err)
	require.NoError(t, p.AddCartItem("A", "1", 50, ""))

	cart := p.Cart()
	cart[0].Name = "changed"

	require.Equal(t, "A", p.Cart()[0].Name)
}

func TestPaymentRequest_SetMerchantData(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name           string
		data           string
		alreadyEncoded bool
		want           string
		wantErr        error
	}{
		{
			name: "round trip",
			data: "hello",
			want: "hello",
		},
		{
			name:           "already encoded",
			data:           base64.StdEncoding.EncodeToString([]byte("order=1")),
			alreadyEncoded: true,
			want:           "order=1",
		},
		{
			name: "max length after encoding",
			data: strings.Repeat("x", 189),
			want: strings.Repeat("x", 189),
		},
		{
			name:    "too long after encoding",
			data:    strings.Repeat("x", 192),
			wantErr: entity.ErrInvalidInput,
		},
		{
			name:           "already encoded but not base64",
			data:           "not base64!",
			alreadyEncoded: true,
			wantErr:        entity.ErrInvalidInput,
		},
		{
			name:           "already encoded too long",
			data:           strings.Repeat("x", 256),
			alreadyEncoded: true,
			wantErr:        entity.ErrInvalidInput,
		},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, err := entity.NewPaymentRequest("1", "", "")
			require.NoError(t, err)

			err = p.SetMerchantData(tt.data, tt.alreadyEncoded)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Empty(t, p.MerchantData())

				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, p.MerchantData())
		})
	}
}

func TestParseQuantity(t *testing.T) {
	t.Parallel()

	q, err := entity.ParseQuantity("3")
	require.NoError(t, err)
	require.Equal(t, "3", q.String())

	_, err = entity.ParseQuantity("one")
	require.ErrorIs(t, err, entity.ErrInvalidInput)
}
