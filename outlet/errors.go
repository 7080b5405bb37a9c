package outlet

import "errors"

// ErrParse is returned by Load for any line that does not parse as
// "row col label".
var ErrParse = errors.New("outlet: malformed outlet line (want \"row col label\")")
