package http

import (
	"net/http"

	"loans-service/internal/usecase/loan"

	"github.com/labstack/echo/v4"
)

const loansBasePath = "/api/v1/loans"

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type createLoanReq struct {
	MobileNumber string `json:"mobileNumber" validate:"required,mobile"`
}

type mobileParam struct {
	MobileNumber string `json:"mobileNumber" validate:"required,mobile"`
}

// Amounts are capped at the INT column range of the loans table.
type updateLoanReq struct {
	MobileNumber      string `json:"mobileNumber" validate:"required,mobile"`
	LoanNumber        string `json:"loanNumber" validate:"required,loannumber"`
	LoanType          string `json:"loanType" validate:"required"`
	TotalLoan         int    `json:"totalLoan" validate:"gt=0,lte=2147483647"`
	AmountPaid        int    `json:"amountPaid" validate:"gte=0,lte=2147483647"`
	OutstandingAmount int    `json:"outstandingAmount" validate:"gte=0,lte=2147483647"`
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req createLoanReq
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Create(c.Request().Context(), loan.CreateLoanInput(req)); err != nil {
		return writeError(c, err)
	}
	c.Response().Header().Set(echo.HeaderLocation, loansBasePath+"/"+req.MobileNumber)
	return c.JSON(http.StatusCreated, ResponseDto{StatusCode: StatusCreated, StatusMessage: MessageCreated})
}

func (h *LoanHandler) FetchLoan(c echo.Context) error {
	p := mobileParam{MobileNumber: pathParam(c, "mobileNumber")}
	if fe := Violations(p); len(fe) > 0 {
		return writeError(c, newValidationError(fe))
	}
	dto, err := h.uc.Fetch(c.Request().Context(), p.MobileNumber)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) UpdateLoan(c echo.Context) error {
	var req updateLoanReq
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}
	ok, err := h.uc.Update(c.Request().Context(), loan.LoanDTO(req))
	return h.writeResult(c, ok, err)
}

func (h *LoanHandler) DeleteLoan(c echo.Context) error {
	p := mobileParam{MobileNumber: pathParam(c, "mobileNumber")}
	if fe := Violations(p); len(fe) > 0 {
		return writeError(c, newValidationError(fe))
	}
	ok, err := h.uc.Delete(c.Request().Context(), p.MobileNumber)
	return h.writeResult(c, ok, err)
}

func (h *LoanHandler) writeResult(c echo.Context, ok bool, err error) error {
	if err != nil {
		return writeError(c, err)
	}
	if !ok {
		return c.JSON(http.StatusInternalServerError, ResponseDto{StatusCode: Status500, StatusMessage: Message500})
	}
	return c.JSON(http.StatusOK, ResponseDto{StatusCode: StatusOK, StatusMessage: MessageOK})
}
