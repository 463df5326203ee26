package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"stockchecker/internal/domain"
	"stockchecker/internal/domain/mocks"
	"stockchecker/internal/usecase"
)

func setup(t *testing.T) (*usecase.StockService, *mocks.MockQuoteFetcher, *mocks.MockLikeLedger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	quotes := mocks.NewMockQuoteFetcher(ctrl)
	ledger := mocks.NewMockLikeLedger(ctrl)
	return usecase.NewStockService(quotes, ledger), quotes, ledger
}

func TestParseSymbols(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"GOOG"}, usecase.ParseSymbols([]string{"goog"}))
	require.Equal(t, []string{"GOOG", "MSFT"}, usecase.ParseSymbols([]string{"GOOG", "msft"}))
	require.Equal(t, []string{"GOOG", "MSFT"}, usecase.ParseSymbols([]string{" goog , MSFT,"}))
	require.Empty(t, usecase.ParseSymbols([]string{"", " , "}))
	require.Empty(t, usecase.ParseSymbols(nil))
}

func TestGetStockPrices_SingleWithLike(t *testing.T) {
	svc, quotes, ledger := setup(t)

	quotes.EXPECT().FetchQuote(gomock.Any(), "GOOG").
		Return(&domain.StockQuote{Symbol: "GOOG", Price: 786.9}, nil)
	ledger.EXPECT().RecordAndCount(gomock.Any(), "GOOG", "203.0.113.1").Return(1, nil)

	results, err := svc.GetStockPrices(context.Background(), []string{"GOOG"}, "203.0.113.1")
	require.NoError(t, err)
	require.Equal(t, []domain.StockResult{{Symbol: "GOOG", Price: 786.9, Likes: 1}}, results)
}

func TestGetStockPrices_UsesCanonicalSymbolForLedger(t *testing.T) {
	svc, quotes, ledger := setup(t)

	quotes.EXPECT().FetchQuote(gomock.Any(), "BRK.B").
		Return(&domain.StockQuote{Symbol: "BRK-B", Price: 410}, nil)
	ledger.EXPECT().RecordAndCount(gomock.Any(), "BRK-B", "").Return(4, nil)

	results, err := svc.GetStockPrices(context.Background(), []string{"BRK.B"}, "")
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "BRK-B", results[0].Symbol)
	require.Equal(t, 4, results[0].Likes)
}

func TestGetStockPrices_PairRelativeLikes(t *testing.T) {
	svc, quotes, ledger := setup(t)

	quotes.EXPECT().FetchQuote(gomock.Any(), "GOOG").
		Return(&domain.StockQuote{Symbol: "GOOG", Price: 100}, nil)
	quotes.EXPECT().FetchQuote(gomock.Any(), "MSFT").
		Return(&domain.StockQuote{Symbol: "MSFT", Price: 200}, nil)
	ledger.EXPECT().RecordAndCount(gomock.Any(), "GOOG", "").Return(3, nil)
	ledger.EXPECT().RecordAndCount(gomock.Any(), "MSFT", "").Return(1, nil)

	results, err := svc.GetStockPrices(context.Background(), []string{"GOOG", "MSFT"}, "")
	require.NoError(t, err)
	require.Len(t, results, 2)

	require.Equal(t, "GOOG", results[0].Symbol)
	require.Equal(t, 2, results[0].RelLikes)
	require.Equal(t, "MSFT", results[1].Symbol)
	require.Equal(t, -2, results[1].RelLikes)
}

func TestGetStockPrices_RelativeLikesAreZeroSum(t *testing.T) {
	for _, counts := range [][2]int{{0, 0}, {5, 0}, {0, 9}, {7, 7}, {12, 3}} {
		t.Run(fmt.Sprintf("%d_%d", counts[0], counts[1]), func(t *testing.T) {
			svc, quotes, ledger := setup(t)

			quotes.EXPECT().FetchQuote(gomock.Any(), "A").Return(&domain.StockQuote{Symbol: "A", Price: 1}, nil)
			quotes.EXPECT().FetchQuote(gomock.Any(), "B").Return(&domain.StockQuote{Symbol: "B", Price: 2}, nil)
			ledger.EXPECT().RecordAndCount(gomock.Any(), "A", "x").Return(counts[0], nil)
			ledger.EXPECT().RecordAndCount(gomock.Any(), "B", "x").Return(counts[1], nil)

			results, err := svc.GetStockPrices(context.Background(), []string{"A", "B"}, "x")
			require.NoError(t, err)
			require.Zero(t, results[0].RelLikes+results[1].RelLikes)
			require.Equal(t, counts[0]-counts[1], results[0].RelLikes)
		})
	}
}

func TestGetStockPrices_FetchFailureAbortsBatch(t *testing.T) {
	svc, quotes, _ := setup(t)

	// The ledger mock has no expectations: any upsert fails the test
	quotes.EXPECT().FetchQuote(gomock.Any(), "GOOG").
		Return(nil, fmt.Errorf("%w: boom", domain.ErrFetchFailure))
	quotes.EXPECT().FetchQuote(gomock.Any(), "MSFT").
		Return(&domain.StockQuote{Symbol: "MSFT", Price: 200}, nil).
		AnyTimes()

	results, err := svc.GetStockPrices(context.Background(), []string{"GOOG", "MSFT"}, "203.0.113.1")
	require.ErrorIs(t, err, domain.ErrFetchFailure)
	require.Nil(t, results)
}

func TestGetStockPrices_PersistenceFailure(t *testing.T) {
	svc, quotes, ledger := setup(t)

	quotes.EXPECT().FetchQuote(gomock.Any(), "GOOG").
		Return(&domain.StockQuote{Symbol: "GOOG", Price: 1}, nil)
	ledger.EXPECT().RecordAndCount(gomock.Any(), "GOOG", "").
		Return(0, fmt.Errorf("%w: %v", domain.ErrPersistence, errors.New("down")))

	_, err := svc.GetStockPrices(context.Background(), []string{"GOOG"}, "")
	require.ErrorIs(t, err, domain.ErrPersistence)
}

func TestGetStockPrices_Validation(t *testing.T) {
	svc, _, _ := setup(t)

	_, err := svc.GetStockPrices(context.Background(), nil, "")
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.GetStockPrices(context.Background(), []string{"A", "B", "C"}, "")
	require.ErrorIs(t, err, domain.ErrValidation)
}
