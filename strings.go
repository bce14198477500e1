package harehttp

var (
	strCRLF       = []byte("\r\n")
	strHTTP11     = []byte("HTTP/1.1")
	strColonSpace = []byte(": ")
	strSemicolon  = []byte(";")
)
