package panlex

// exprRequest asks for the expressions of txt in variety uid.
type exprRequest struct {
	Txt []string `json:"txt"`
	UID string   `json:"uid"`
}

// translationRequest asks for translations of trans_expr into variety uid.
type translationRequest struct {
	Include         string   `json:"include"`
	TransExpr       []ExprID `json:"trans_expr"`
	UID             string   `json:"uid"`
	TransQualityMin int      `json:"trans_quality_min"`
}

type exprResponse struct {
	Result []exprResult `json:"result"`
}

type exprResult struct {
	ID  ExprID `json:"id"`
	Txt string `json:"txt"`
}

type translationResponse struct {
	Result []translationResult `json:"result"`
}

// translationResult is one translation txt of source expression trans_expr.
type translationResult struct {
	TransExpr    ExprID `json:"trans_expr"`
	TransQuality int    `json:"trans_quality"`
	Txt          string `json:"txt"`
}
