package mapper

import (
	"time"

	"github.com/discoverislamwebvercel-alt/discover-islam-sub000/app/entity"
	"github.com/discoverislamwebvercel-alt/discover-islam-sub000/app/types"
)

func RedirectFlowToResponse(flow *entity.RedirectFlow) *types.RedirectFlowResponse {
	if flow == nil {
		return nil
	}

	return &types.RedirectFlowResponse{
		ID:          flow.ID,
		Status:      flow.Status,
		RedirectURI: flow.RedirectURI,
		CreatedAt:   flow.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   flow.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
