package response

import (
	"time"

	"dealvista/internal/usecase/commands"
	"dealvista/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CouponResponse struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Code          string     `json:"code"`
	Platform      string     `json:"platform"`
	Category      string     `json:"category"`
	DiscountType  string     `json:"discount_type"`
	DiscountValue int        `json:"discount_value"`
	ValidFrom     *time.Time `json:"valid_from,omitempty"`
	ValidTill     *time.Time `json:"valid_till,omitempty"`
	Terms         string     `json:"terms"`
	TotalQuantity int        `json:"total_quantity"`
	SoldQuantity  int        `json:"sold_quantity"`
	IsActive      bool       `json:"is_active"`
	RedeemCost    int        `json:"redeem_cost"`
	ListedBy      uuid.UUID  `json:"listed_by"`
	ListerName    string     `json:"lister_name"`
	CreatedAt     time.Time  `json:"created_at"`
}

func FromCouponView(v *queries.CouponView) (*CouponResponse, error) {
	var resp CouponResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	return &resp, nil
}

type CouponPageResponse struct {
	Items    []CouponResponse `json:"items"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

func FromCouponPage(p *queries.CouponPage) (*CouponPageResponse, error) {
	items := make([]CouponResponse, 0, len(p.Items))
	for i := range p.Items {
		item, err := FromCouponView(&p.Items[i])
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return &CouponPageResponse{
		Items:    items,
		Total:    p.Total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}, nil
}

type CreateCouponResponse struct {
	CouponID      uuid.UUID `json:"coupon_id"`
	PointsEarned  int       `json:"points_earned"`
	PointsBalance int       `json:"points_balance"`
}

func FromListCouponOutput(out *commands.ListCouponOutput) *CreateCouponResponse {
	return &CreateCouponResponse{
		CouponID:      out.CouponID,
		PointsEarned:  out.PointsEarned,
		PointsBalance: out.PointsBalance,
	}
}

type RedeemResponse struct {
	RedemptionID   uuid.UUID `json:"redemption_id"`
	CouponID       uuid.UUID `json:"coupon_id"`
	Title          string    `json:"title"`
	Code           string    `json:"code"`
	PointsDeducted int       `json:"points_deducted"`
	PointsBalance  int       `json:"points_balance"`
}

func FromRedeemOutput(out *commands.RedeemOutput) *RedeemResponse {
	return &RedeemResponse{
		RedemptionID:   out.RedemptionID,
		CouponID:       out.CouponID,
		Title:          out.Title,
		Code:           out.Code,
		PointsDeducted: out.PointsDeducted,
		PointsBalance:  out.PointsBalance,
	}
}
