package ps

// builtinOperators returns the complete systemdict operator table: stack,
// math, composite, dictionary, type, relational, control-flow, and error
// plumbing, keyed by their PostScript operator names.
func builtinOperators() map[string]Operator {
	return map[string]Operator{
		// stack
		"dup":          opDup,
		"exch":         opExch,
		"pop":          opPop,
		"copy":         opCopy,
		"roll":         opRoll,
		"index":        opIndex,
		"mark":         opMark,
		"[":            opMark,
		"clear":        opClear,
		"count":        opCount,
		"counttomark":  opCountToMark,
		"cleartomark":  opClearToMark,

		// math
		"add":      opAdd,
		"sub":      opSub,
		"mul":      opMul,
		"div":      opDiv,
		"idiv":     opIdiv,
		"mod":      opMod,
		"abs":      opAbs,
		"neg":      opNeg,
		"ceiling":  opCeiling,
		"floor":    opFloor,
		"round":    opRound,
		"truncate": opTruncate,
		"sqrt":     opSqrt,
		"atan":     opAtan,
		"cos":      opCos,
		"sin":      opSin,
		"exp":      opExp,
		"ln":       opLn,
		"log":      opLog,
		"rand":     opRand,
		"srand":    opSrand,
		"rrand":    opRrand,

		// composite
		"array":           opArray,
		"]":               opEndArray,
		"length":          opLength,
		"get":              opGet,
		"put":              opPut,
		"getinterval":      opGetInterval,
		"putinterval":      opPutInterval,
		"astore":           opAstore,
		"aload":            opAload,
		"forall":           opForAll,
		"packedarray":      opPackedArray,
		"setpacking":       opSetPacking,
		"currentpacking":   opCurrentPacking,

		// dictionary
		"dict":           opDict,
		"<<":             opMark,
		">>":             opEndDict,
		"maxlength":      opMaxLength,
		"begin":          opBegin,
		"end":            opEnd,
		"def":            opDef,
		"load":           opLoad,
		"store":          opStore,
		"undef":          opUndef,
		"known":          opKnown,
		"where":          opWhereDef,
		"currentdict":    opCurrentDict,
		"countdictstack": opCountDictStack,

		// type and relational
		"type": opType,
		"eq":   opEq,
		"ne":   opNe,

		// control flow and misc
		"null":    opNull,
		"exec":    opExec,
		"if":      opIf,
		"ifelse":  opIfElse,

		// error plumbing
		"handleerror": opHandleError,
	}
}
