//go:build staging

package staging

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"
)

// TestWalletLazyCreation verifies that a first read creates the wallet with
// the initial bonus.
func TestWalletLazyCreation(t *testing.T) {
	ownerID := fmt.Sprintf("staging_owner_%d", time.Now().UnixNano())

	resp, body := makeRequest(t, "GET", "/api/v1/wallet?owner_id="+ownerID, nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Wallet struct {
			OwnerID string `json:"owner_id"`
			Balance int    `json:"balance"`
		} `json:"wallet"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if result.Wallet.OwnerID != ownerID {
		t.Errorf("Expected owner %s, got %s", ownerID, result.Wallet.OwnerID)
	}
	if result.Wallet.Balance != 100 {
		t.Errorf("Expected initial bonus balance 100, got %d", result.Wallet.Balance)
	}
}

// TestCreditAndTransactions credits a wallet and confirms the ledger entry
// shows up.
func TestCreditAndTransactions(t *testing.T) {
	ownerID := fmt.Sprintf("staging_credit_%d", time.Now().UnixNano())

	request := map[string]interface{}{
		"owner_id": ownerID,
		"amount":   50,
		"reason":   "ADMIN_GRANT",
	}
	resp, body := makeRequest(t, "POST", "/api/v1/wallet/credit", request)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var credit struct {
		Balance int `json:"balance"`
	}
	if err := json.Unmarshal(body, &credit); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	// 100 initial bonus + 50 grant
	if credit.Balance != 150 {
		t.Errorf("Expected balance 150, got %d", credit.Balance)
	}

	resp, body = makeRequest(t, "GET", "/api/v1/wallet/transactions?owner_id="+ownerID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var txs struct {
		Transactions []struct {
			Type   string `json:"type"`
			Reason string `json:"reason"`
		} `json:"transactions"`
	}
	if err := json.Unmarshal(body, &txs); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(txs.Transactions) < 2 {
		t.Errorf("Expected at least 2 transactions (bonus + grant), got %d", len(txs.Transactions))
	}
}
