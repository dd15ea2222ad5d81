package mol

// Export some internal things for testing

var FirstPart = firstPart

const MaxMsgLen = maxMsgLen
