package subscores

// Scores is the {MQ,FQ,TO,MR,VC} sub-score bundle for one ticker, each in
// [0,1].
type Scores struct {
	MQ float64
	FQ float64
	TO float64
	MR float64
	VC float64
}
