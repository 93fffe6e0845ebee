package queries

import (
	"database/sql"
	"encoding/json"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// BoardOrderResponse is one card on a picker or packer board: order identity
// plus progress counters derived from the line item document.
type BoardOrderResponse struct {
	ID           kernel.UUID
	ExternalRef  string
	Number       string
	CustomerName string
	Status       string
	PickerID     *kernel.UUID
	PackerID     *kernel.UUID
	ItemCount    int
	UnitCount    int
	PickedItems  int
	PackedItems  int
}

// boardItem is the slice of the line item document the boards need.
type boardItem struct {
	Quantity int  `json:"quantity"`
	Picked   bool `json:"picked"`
	Packed   bool `json:"packed"`
}

func scanBoardRows(rows *sql.Rows) ([]BoardOrderResponse, error) {
	board := make([]BoardOrderResponse, 0)

	for rows.Next() {
		var (
			id                 uuid.UUID
			externalRef        string
			number             string
			customerName       string
			status             int
			pickerID, packerID *uuid.UUID
			lineItems          []byte
		)

		err := rows.Scan(&id, &externalRef, &number, &customerName, &status, &pickerID, &packerID, &lineItems)
		if err != nil {
			return nil, err
		}

		resp := BoardOrderResponse{
			ExternalRef:  externalRef,
			Number:       number,
			CustomerName: customerName,
			Status:       order.Status(status).String(),
		}

		resp.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		if pickerID != nil {
			pID, pickerErr := kernel.UUIDFromBytes((*pickerID)[:])
			if pickerErr != nil {
				return nil, pickerErr
			}
			resp.PickerID = &pID
		}
		if packerID != nil {
			pID, packerErr := kernel.UUIDFromBytes((*packerID)[:])
			if packerErr != nil {
				return nil, packerErr
			}
			resp.PackerID = &pID
		}

		var items []boardItem
		if err = json.Unmarshal(lineItems, &items); err != nil {
			return nil, err
		}

		resp.ItemCount = len(items)
		for _, item := range items {
			resp.UnitCount += item.Quantity
			if item.Picked {
				resp.PickedItems++
			}
			if item.Packed {
				resp.PackedItems++
			}
		}

		board = append(board, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return board, nil
}
