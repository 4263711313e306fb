package main

// implicitDefinitions maps the upstream predefined operator tags to Go names.
var implicitDefinitions = []implicitSpec{
	{"AccessEquality", "IIR_PREDEFINED_ACCESS_EQUALITY"},
	{"AccessInequality", "IIR_PREDEFINED_ACCESS_INEQUALITY"},
	{"ArrayArrayConcat", "IIR_PREDEFINED_ARRAY_ARRAY_CONCAT"},
	{"ArrayCharToString", "IIR_PREDEFINED_ARRAY_CHAR_TO_STRING"},
	{"ArrayElementConcat", "IIR_PREDEFINED_ARRAY_ELEMENT_CONCAT"},
	{"ArrayEquality", "IIR_PREDEFINED_ARRAY_EQUALITY"},
	{"ArrayGreater", "IIR_PREDEFINED_ARRAY_GREATER"},
	{"ArrayGreaterEqual", "IIR_PREDEFINED_ARRAY_GREATER_EQUAL"},
	{"ArrayInequality", "IIR_PREDEFINED_ARRAY_INEQUALITY"},
	{"ArrayLess", "IIR_PREDEFINED_ARRAY_LESS"},
	{"ArrayLessEqual", "IIR_PREDEFINED_ARRAY_LESS_EQUAL"},
	{"ArrayMaximum", "IIR_PREDEFINED_ARRAY_MAXIMUM"},
	{"ArrayMinimum", "IIR_PREDEFINED_ARRAY_MINIMUM"},
	{"ArrayRol", "IIR_PREDEFINED_ARRAY_ROL"},
	{"ArrayRor", "IIR_PREDEFINED_ARRAY_ROR"},
	{"ArraySla", "IIR_PREDEFINED_ARRAY_SLA"},
	{"ArraySll", "IIR_PREDEFINED_ARRAY_SLL"},
	{"ArraySra", "IIR_PREDEFINED_ARRAY_SRA"},
	{"ArraySrl", "IIR_PREDEFINED_ARRAY_SRL"},
	{"BitAnd", "IIR_PREDEFINED_BIT_AND"},
	{"BitArrayMatchEquality", "IIR_PREDEFINED_BIT_ARRAY_MATCH_EQUALITY"},
	{"BitArrayMatchInequality", "IIR_PREDEFINED_BIT_ARRAY_MATCH_INEQUALITY"},
	{"BitCondition", "IIR_PREDEFINED_BIT_CONDITION"},
	{"BitFallingEdge", "IIR_PREDEFINED_BIT_FALLING_EDGE"},
	{"BitMatchEquality", "IIR_PREDEFINED_BIT_MATCH_EQUALITY"},
	{"BitMatchGreater", "IIR_PREDEFINED_BIT_MATCH_GREATER"},
	{"BitMatchGreaterEqual", "IIR_PREDEFINED_BIT_MATCH_GREATER_EQUAL"},
	{"BitMatchInequality", "IIR_PREDEFINED_BIT_MATCH_INEQUALITY"},
	{"BitMatchLess", "IIR_PREDEFINED_BIT_MATCH_LESS"},
	{"BitMatchLessEqual", "IIR_PREDEFINED_BIT_MATCH_LESS_EQUAL"},
	{"BitNand", "IIR_PREDEFINED_BIT_NAND"},
	{"BitNor", "IIR_PREDEFINED_BIT_NOR"},
	{"BitNot", "IIR_PREDEFINED_BIT_NOT"},
	{"BitOr", "IIR_PREDEFINED_BIT_OR"},
	{"BitRisingEdge", "IIR_PREDEFINED_BIT_RISING_EDGE"},
	{"BitVectorToHstring", "IIR_PREDEFINED_BIT_VECTOR_TO_HSTRING"},
	{"BitVectorToOstring", "IIR_PREDEFINED_BIT_VECTOR_TO_OSTRING"},
	{"BitXnor", "IIR_PREDEFINED_BIT_XNOR"},
	{"BitXor", "IIR_PREDEFINED_BIT_XOR"},
	{"BooleanAnd", "IIR_PREDEFINED_BOOLEAN_AND"},
	{"BooleanFallingEdge", "IIR_PREDEFINED_BOOLEAN_FALLING_EDGE"},
	{"BooleanNand", "IIR_PREDEFINED_BOOLEAN_NAND"},
	{"BooleanNor", "IIR_PREDEFINED_BOOLEAN_NOR"},
	{"BooleanNot", "IIR_PREDEFINED_BOOLEAN_NOT"},
	{"BooleanOr", "IIR_PREDEFINED_BOOLEAN_OR"},
	{"BooleanRisingEdge", "IIR_PREDEFINED_BOOLEAN_RISING_EDGE"},
	{"BooleanXnor", "IIR_PREDEFINED_BOOLEAN_XNOR"},
	{"BooleanXor", "IIR_PREDEFINED_BOOLEAN_XOR"},
	{"Deallocate", "IIR_PREDEFINED_DEALLOCATE"},
	{"ElementArrayConcat", "IIR_PREDEFINED_ELEMENT_ARRAY_CONCAT"},
	{"ElementElementConcat", "IIR_PREDEFINED_ELEMENT_ELEMENT_CONCAT"},
	{"Endfile", "IIR_PREDEFINED_ENDFILE"},
	{"EnumEquality", "IIR_PREDEFINED_ENUM_EQUALITY"},
	{"EnumGreater", "IIR_PREDEFINED_ENUM_GREATER"},
	{"EnumGreaterEqual", "IIR_PREDEFINED_ENUM_GREATER_EQUAL"},
	{"EnumInequality", "IIR_PREDEFINED_ENUM_INEQUALITY"},
	{"EnumLess", "IIR_PREDEFINED_ENUM_LESS"},
	{"EnumLessEqual", "IIR_PREDEFINED_ENUM_LESS_EQUAL"},
	{"EnumMaximum", "IIR_PREDEFINED_ENUM_MAXIMUM"},
	{"EnumMinimum", "IIR_PREDEFINED_ENUM_MINIMUM"},
	{"EnumToString", "IIR_PREDEFINED_ENUM_TO_STRING"},
	{"Error", "IIR_PREDEFINED_ERROR"},
	{"FileClose", "IIR_PREDEFINED_FILE_CLOSE"},
	{"FileOpen", "IIR_PREDEFINED_FILE_OPEN"},
	{"FileOpenStatus", "IIR_PREDEFINED_FILE_OPEN_STATUS"},
	{"FloatingAbsolute", "IIR_PREDEFINED_FLOATING_ABSOLUTE"},
	{"FloatingDiv", "IIR_PREDEFINED_FLOATING_DIV"},
	{"FloatingEquality", "IIR_PREDEFINED_FLOATING_EQUALITY"},
	{"FloatingExp", "IIR_PREDEFINED_FLOATING_EXP"},
	{"FloatingGreater", "IIR_PREDEFINED_FLOATING_GREATER"},
	{"FloatingGreaterEqual", "IIR_PREDEFINED_FLOATING_GREATER_EQUAL"},
	{"FloatingIdentity", "IIR_PREDEFINED_FLOATING_IDENTITY"},
	{"FloatingInequality", "IIR_PREDEFINED_FLOATING_INEQUALITY"},
	{"FloatingLess", "IIR_PREDEFINED_FLOATING_LESS"},
	{"FloatingLessEqual", "IIR_PREDEFINED_FLOATING_LESS_EQUAL"},
	{"FloatingMaximum", "IIR_PREDEFINED_FLOATING_MAXIMUM"},
	{"FloatingMinimum", "IIR_PREDEFINED_FLOATING_MINIMUM"},
	{"FloatingMinus", "IIR_PREDEFINED_FLOATING_MINUS"},
	{"FloatingMul", "IIR_PREDEFINED_FLOATING_MUL"},
	{"FloatingNegation", "IIR_PREDEFINED_FLOATING_NEGATION"},
	{"FloatingPlus", "IIR_PREDEFINED_FLOATING_PLUS"},
	{"FloatingToString", "IIR_PREDEFINED_FLOATING_TO_STRING"},
	{"Flush", "IIR_PREDEFINED_FLUSH"},
	{"ForeignTextioReadReal", "IIR_PREDEFINED_FOREIGN_TEXTIO_READ_REAL"},
	{"ForeignTextioWriteReal", "IIR_PREDEFINED_FOREIGN_TEXTIO_WRITE_REAL"},
	{"ForeignUntruncatedTextRead", "IIR_PREDEFINED_FOREIGN_UNTRUNCATED_TEXT_READ"},
	{"FrequencyFunction", "IIR_PREDEFINED_FREQUENCY_FUNCTION"},
	{"Ieee1164AndLogSuv", "IIR_PREDEFINED_IEEE_1164_AND_LOG_SUV"},
	{"Ieee1164AndSuv", "IIR_PREDEFINED_IEEE_1164_AND_SUV"},
	{"Ieee1164AndSuvLog", "IIR_PREDEFINED_IEEE_1164_AND_SUV_LOG"},
	{"Ieee1164ConditionOperator", "IIR_PREDEFINED_IEEE_1164_CONDITION_OPERATOR"},
	{"Ieee1164FallingEdge", "IIR_PREDEFINED_IEEE_1164_FALLING_EDGE"},
	{"Ieee1164IsXLog", "IIR_PREDEFINED_IEEE_1164_IS_X_LOG"},
	{"Ieee1164IsXSlv", "IIR_PREDEFINED_IEEE_1164_IS_X_SLV"},
	{"Ieee1164NandLogSuv", "IIR_PREDEFINED_IEEE_1164_NAND_LOG_SUV"},
	{"Ieee1164NandSuv", "IIR_PREDEFINED_IEEE_1164_NAND_SUV"},
	{"Ieee1164NandSuvLog", "IIR_PREDEFINED_IEEE_1164_NAND_SUV_LOG"},
	{"Ieee1164NorLogSuv", "IIR_PREDEFINED_IEEE_1164_NOR_LOG_SUV"},
	{"Ieee1164NorSuv", "IIR_PREDEFINED_IEEE_1164_NOR_SUV"},
	{"Ieee1164NorSuvLog", "IIR_PREDEFINED_IEEE_1164_NOR_SUV_LOG"},
	{"Ieee1164OrLogSuv", "IIR_PREDEFINED_IEEE_1164_OR_LOG_SUV"},
	{"Ieee1164OrSuv", "IIR_PREDEFINED_IEEE_1164_OR_SUV"},
	{"Ieee1164OrSuvLog", "IIR_PREDEFINED_IEEE_1164_OR_SUV_LOG"},
	{"Ieee1164RisingEdge", "IIR_PREDEFINED_IEEE_1164_RISING_EDGE"},
	{"Ieee1164ScalarAnd", "IIR_PREDEFINED_IEEE_1164_SCALAR_AND"},
	{"Ieee1164ScalarNand", "IIR_PREDEFINED_IEEE_1164_SCALAR_NAND"},
	{"Ieee1164ScalarNor", "IIR_PREDEFINED_IEEE_1164_SCALAR_NOR"},
	{"Ieee1164ScalarNot", "IIR_PREDEFINED_IEEE_1164_SCALAR_NOT"},
	{"Ieee1164ScalarOr", "IIR_PREDEFINED_IEEE_1164_SCALAR_OR"},
	{"Ieee1164ScalarXnor", "IIR_PREDEFINED_IEEE_1164_SCALAR_XNOR"},
	{"Ieee1164ScalarXor", "IIR_PREDEFINED_IEEE_1164_SCALAR_XOR"},
	{"Ieee1164To01LogLog", "IIR_PREDEFINED_IEEE_1164_TO_01_LOG_LOG"},
	{"Ieee1164To01SlvLog", "IIR_PREDEFINED_IEEE_1164_TO_01_SLV_LOG"},
	{"Ieee1164ToBit", "IIR_PREDEFINED_IEEE_1164_TO_BIT"},
	{"Ieee1164ToBitvector", "IIR_PREDEFINED_IEEE_1164_TO_BITVECTOR"},
	{"Ieee1164ToHstring", "IIR_PREDEFINED_IEEE_1164_TO_HSTRING"},
	{"Ieee1164ToOstring", "IIR_PREDEFINED_IEEE_1164_TO_OSTRING"},
	{"Ieee1164ToStdlogicvectorBv", "IIR_PREDEFINED_IEEE_1164_TO_STDLOGICVECTOR_BV"},
	{"Ieee1164ToStdlogicvectorSuv", "IIR_PREDEFINED_IEEE_1164_TO_STDLOGICVECTOR_SUV"},
	{"Ieee1164ToStdulogic", "IIR_PREDEFINED_IEEE_1164_TO_STDULOGIC"},
	{"Ieee1164ToStdulogicvectorBv", "IIR_PREDEFINED_IEEE_1164_TO_STDULOGICVECTOR_BV"},
	{"Ieee1164ToStdulogicvectorSlv", "IIR_PREDEFINED_IEEE_1164_TO_STDULOGICVECTOR_SLV"},
	{"Ieee1164ToUx01BitLog", "IIR_PREDEFINED_IEEE_1164_TO_UX01_BIT_LOG"},
	{"Ieee1164ToUx01BvSlv", "IIR_PREDEFINED_IEEE_1164_TO_UX01_BV_SLV"},
	{"Ieee1164ToUx01BvSuv", "IIR_PREDEFINED_IEEE_1164_TO_UX01_BV_SUV"},
	{"Ieee1164ToUx01Log", "IIR_PREDEFINED_IEEE_1164_TO_UX01_LOG"},
	{"Ieee1164ToUx01Slv", "IIR_PREDEFINED_IEEE_1164_TO_UX01_SLV"},
	{"Ieee1164ToUx01Suv", "IIR_PREDEFINED_IEEE_1164_TO_UX01_SUV"},
	{"Ieee1164ToX01BitLog", "IIR_PREDEFINED_IEEE_1164_TO_X01_BIT_LOG"},
	{"Ieee1164ToX01BvSlv", "IIR_PREDEFINED_IEEE_1164_TO_X01_BV_SLV"},
	{"Ieee1164ToX01BvSuv", "IIR_PREDEFINED_IEEE_1164_TO_X01_BV_SUV"},
	{"Ieee1164ToX01Log", "IIR_PREDEFINED_IEEE_1164_TO_X01_LOG"},
	{"Ieee1164ToX01Slv", "IIR_PREDEFINED_IEEE_1164_TO_X01_SLV"},
	{"Ieee1164ToX01Suv", "IIR_PREDEFINED_IEEE_1164_TO_X01_SUV"},
	{"Ieee1164ToX01zBitLog", "IIR_PREDEFINED_IEEE_1164_TO_X01Z_BIT_LOG"},
	{"Ieee1164ToX01zBvSlv", "IIR_PREDEFINED_IEEE_1164_TO_X01Z_BV_SLV"},
	{"Ieee1164ToX01zBvSuv", "IIR_PREDEFINED_IEEE_1164_TO_X01Z_BV_SUV"},
	{"Ieee1164ToX01zLog", "IIR_PREDEFINED_IEEE_1164_TO_X01Z_LOG"},
	{"Ieee1164ToX01zSlv", "IIR_PREDEFINED_IEEE_1164_TO_X01Z_SLV"},
	{"Ieee1164ToX01zSuv", "IIR_PREDEFINED_IEEE_1164_TO_X01Z_SUV"},
	{"Ieee1164VectorAnd", "IIR_PREDEFINED_IEEE_1164_VECTOR_AND"},
	{"Ieee1164VectorNand", "IIR_PREDEFINED_IEEE_1164_VECTOR_NAND"},
	{"Ieee1164VectorNor", "IIR_PREDEFINED_IEEE_1164_VECTOR_NOR"},
	{"Ieee1164VectorNot", "IIR_PREDEFINED_IEEE_1164_VECTOR_NOT"},
	{"Ieee1164VectorOr", "IIR_PREDEFINED_IEEE_1164_VECTOR_OR"},
	{"Ieee1164VectorRol", "IIR_PREDEFINED_IEEE_1164_VECTOR_ROL"},
	{"Ieee1164VectorRor", "IIR_PREDEFINED_IEEE_1164_VECTOR_ROR"},
	{"Ieee1164VectorSll", "IIR_PREDEFINED_IEEE_1164_VECTOR_SLL"},
	{"Ieee1164VectorSrl", "IIR_PREDEFINED_IEEE_1164_VECTOR_SRL"},
	{"Ieee1164VectorXnor", "IIR_PREDEFINED_IEEE_1164_VECTOR_XNOR"},
	{"Ieee1164VectorXor", "IIR_PREDEFINED_IEEE_1164_VECTOR_XOR"},
	{"Ieee1164XnorLogSuv", "IIR_PREDEFINED_IEEE_1164_XNOR_LOG_SUV"},
	{"Ieee1164XnorSuv", "IIR_PREDEFINED_IEEE_1164_XNOR_SUV"},
	{"Ieee1164XnorSuvLog", "IIR_PREDEFINED_IEEE_1164_XNOR_SUV_LOG"},
	{"Ieee1164XorLogSuv", "IIR_PREDEFINED_IEEE_1164_XOR_LOG_SUV"},
	{"Ieee1164XorSuv", "IIR_PREDEFINED_IEEE_1164_XOR_SUV"},
	{"Ieee1164XorSuvLog", "IIR_PREDEFINED_IEEE_1164_XOR_SUV_LOG"},
	{"IeeeMathRealArccos", "IIR_PREDEFINED_IEEE_MATH_REAL_ARCCOS"},
	{"IeeeMathRealArccosh", "IIR_PREDEFINED_IEEE_MATH_REAL_ARCCOSH"},
	{"IeeeMathRealArcsin", "IIR_PREDEFINED_IEEE_MATH_REAL_ARCSIN"},
	{"IeeeMathRealArcsinh", "IIR_PREDEFINED_IEEE_MATH_REAL_ARCSINH"},
	{"IeeeMathRealArctan", "IIR_PREDEFINED_IEEE_MATH_REAL_ARCTAN"},
	{"IeeeMathRealArctanRealReal", "IIR_PREDEFINED_IEEE_MATH_REAL_ARCTAN_REAL_REAL"},
	{"IeeeMathRealArctanh", "IIR_PREDEFINED_IEEE_MATH_REAL_ARCTANH"},
	{"IeeeMathRealCbrt", "IIR_PREDEFINED_IEEE_MATH_REAL_CBRT"},
	{"IeeeMathRealCeil", "IIR_PREDEFINED_IEEE_MATH_REAL_CEIL"},
	{"IeeeMathRealCos", "IIR_PREDEFINED_IEEE_MATH_REAL_COS"},
	{"IeeeMathRealCosh", "IIR_PREDEFINED_IEEE_MATH_REAL_COSH"},
	{"IeeeMathRealExp", "IIR_PREDEFINED_IEEE_MATH_REAL_EXP"},
	{"IeeeMathRealFloor", "IIR_PREDEFINED_IEEE_MATH_REAL_FLOOR"},
	{"IeeeMathRealLog", "IIR_PREDEFINED_IEEE_MATH_REAL_LOG"},
	{"IeeeMathRealLogRealReal", "IIR_PREDEFINED_IEEE_MATH_REAL_LOG_REAL_REAL"},
	{"IeeeMathRealLog10", "IIR_PREDEFINED_IEEE_MATH_REAL_LOG10"},
	{"IeeeMathRealLog2", "IIR_PREDEFINED_IEEE_MATH_REAL_LOG2"},
	{"IeeeMathRealMod", "IIR_PREDEFINED_IEEE_MATH_REAL_MOD"},
	{"IeeeMathRealPowIntReal", "IIR_PREDEFINED_IEEE_MATH_REAL_POW_INT_REAL"},
	{"IeeeMathRealPowRealReal", "IIR_PREDEFINED_IEEE_MATH_REAL_POW_REAL_REAL"},
	{"IeeeMathRealRealmax", "IIR_PREDEFINED_IEEE_MATH_REAL_REALMAX"},
	{"IeeeMathRealRealmin", "IIR_PREDEFINED_IEEE_MATH_REAL_REALMIN"},
	{"IeeeMathRealRound", "IIR_PREDEFINED_IEEE_MATH_REAL_ROUND"},
	{"IeeeMathRealSign", "IIR_PREDEFINED_IEEE_MATH_REAL_SIGN"},
	{"IeeeMathRealSin", "IIR_PREDEFINED_IEEE_MATH_REAL_SIN"},
	{"IeeeMathRealSinh", "IIR_PREDEFINED_IEEE_MATH_REAL_SINH"},
	{"IeeeMathRealSqrt", "IIR_PREDEFINED_IEEE_MATH_REAL_SQRT"},
	{"IeeeMathRealTan", "IIR_PREDEFINED_IEEE_MATH_REAL_TAN"},
	{"IeeeMathRealTanh", "IIR_PREDEFINED_IEEE_MATH_REAL_TANH"},
	{"IeeeMathRealTrunc", "IIR_PREDEFINED_IEEE_MATH_REAL_TRUNC"},
	{"IeeeNumericBitToIntSgnInt", "IIR_PREDEFINED_IEEE_NUMERIC_BIT_TOINT_SGN_INT"},
	{"IeeeNumericBitToIntUnsNat", "IIR_PREDEFINED_IEEE_NUMERIC_BIT_TOINT_UNS_NAT"},
	{"IeeeNumericBitToSgnIntNatSgn", "IIR_PREDEFINED_IEEE_NUMERIC_BIT_TOSGN_INT_NAT_SGN"},
	{"IeeeNumericBitToSgnIntSgnSgn", "IIR_PREDEFINED_IEEE_NUMERIC_BIT_TOSGN_INT_SGN_SGN"},
	{"IeeeNumericBitToUnsNatNatUns", "IIR_PREDEFINED_IEEE_NUMERIC_BIT_TOUNS_NAT_NAT_UNS"},
	{"IeeeNumericBitToUnsNatUnsUns", "IIR_PREDEFINED_IEEE_NUMERIC_BIT_TOUNS_NAT_UNS_UNS"},
	{"IeeeNumericStdAbsSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_ABS_SGN"},
	{"IeeeNumericStdAddIntSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_ADD_INT_SGN"},
	{"IeeeNumericStdAddLogSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_ADD_LOG_SGN"},
	{"IeeeNumericStdAddLogUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_ADD_LOG_UNS"},
	{"IeeeNumericStdAddNatUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_ADD_NAT_UNS"},
	{"IeeeNumericStdAddSgnInt", "IIR_PREDEFINED_IEEE_NUMERIC_STD_ADD_SGN_INT"},
	{"IeeeNumericStdAddSgnLog", "IIR_PREDEFINED_IEEE_NUMERIC_STD_ADD_SGN_LOG"},
	{"IeeeNumericStdAddSgnSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_ADD_SGN_SGN"},
	{"IeeeNumericStdAddUnsLog", "IIR_PREDEFINED_IEEE_NUMERIC_STD_ADD_UNS_LOG"},
	{"IeeeNumericStdAddUnsNat", "IIR_PREDEFINED_IEEE_NUMERIC_STD_ADD_UNS_NAT"},
	{"IeeeNumericStdAddUnsUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_ADD_UNS_UNS"},
	{"IeeeNumericStdAndLogSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_AND_LOG_SGN"},
	{"IeeeNumericStdAndLogUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_AND_LOG_UNS"},
	{"IeeeNumericStdAndSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_AND_SGN"},
	{"IeeeNumericStdAndSgnLog", "IIR_PREDEFINED_IEEE_NUMERIC_STD_AND_SGN_LOG"},
	{"IeeeNumericStdAndSgnSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_AND_SGN_SGN"},
	{"IeeeNumericStdAndUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_AND_UNS"},
	{"IeeeNumericStdAndUnsLog", "IIR_PREDEFINED_IEEE_NUMERIC_STD_AND_UNS_LOG"},
	{"IeeeNumericStdAndUnsUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_AND_UNS_UNS"},
	{"IeeeNumericStdDivIntSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_DIV_INT_SGN"},
	{"IeeeNumericStdDivNatUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_DIV_NAT_UNS"},
	{"IeeeNumericStdDivSgnInt", "IIR_PREDEFINED_IEEE_NUMERIC_STD_DIV_SGN_INT"},
	{"IeeeNumericStdDivSgnSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_DIV_SGN_SGN"},
	{"IeeeNumericStdDivUnsNat", "IIR_PREDEFINED_IEEE_NUMERIC_STD_DIV_UNS_NAT"},
	{"IeeeNumericStdDivUnsUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_DIV_UNS_UNS"},
	{"IeeeNumericStdEqIntSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_EQ_INT_SGN"},
	{"IeeeNumericStdEqNatUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_EQ_NAT_UNS"},
	{"IeeeNumericStdEqSgnInt", "IIR_PREDEFINED_IEEE_NUMERIC_STD_EQ_SGN_INT"},
	{"IeeeNumericStdEqSgnSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_EQ_SGN_SGN"},
	{"IeeeNumericStdEqUnsNat", "IIR_PREDEFINED_IEEE_NUMERIC_STD_EQ_UNS_NAT"},
	{"IeeeNumericStdEqUnsUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_EQ_UNS_UNS"},
	{"IeeeNumericStdFindLeftmostSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_FIND_LEFTMOST_SGN"},
	{"IeeeNumericStdFindLeftmostUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_FIND_LEFTMOST_UNS"},
	{"IeeeNumericStdFindRightmostSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_FIND_RIGHTMOST_SGN"},
	{"IeeeNumericStdFindRightmostUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_FIND_RIGHTMOST_UNS"},
	{"IeeeNumericStdGeIntSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_GE_INT_SGN"},
	{"IeeeNumericStdGeNatUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_GE_NAT_UNS"},
	{"IeeeNumericStdGeSgnInt", "IIR_PREDEFINED_IEEE_NUMERIC_STD_GE_SGN_INT"},
	{"IeeeNumericStdGeSgnSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_GE_SGN_SGN"},
	{"IeeeNumericStdGeUnsNat", "IIR_PREDEFINED_IEEE_NUMERIC_STD_GE_UNS_NAT"},
	{"IeeeNumericStdGeUnsUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_GE_UNS_UNS"},
	{"IeeeNumericStdGtIntSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_GT_INT_SGN"},
	{"IeeeNumericStdGtNatUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_GT_NAT_UNS"},
	{"IeeeNumericStdGtSgnInt", "IIR_PREDEFINED_IEEE_NUMERIC_STD_GT_SGN_INT"},
	{"IeeeNumericStdGtSgnSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_GT_SGN_SGN"},
	{"IeeeNumericStdGtUnsNat", "IIR_PREDEFINED_IEEE_NUMERIC_STD_GT_UNS_NAT"},
	{"IeeeNumericStdGtUnsUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_GT_UNS_UNS"},
	{"IeeeNumericStdIsXSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_IS_X_SGN"},
	{"IeeeNumericStdIsXUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_IS_X_UNS"},
	{"IeeeNumericStdLeIntSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_LE_INT_SGN"},
	{"IeeeNumericStdLeNatUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_LE_NAT_UNS"},
	{"IeeeNumericStdLeSgnInt", "IIR_PREDEFINED_IEEE_NUMERIC_STD_LE_SGN_INT"},
	{"IeeeNumericStdLeSgnSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_LE_SGN_SGN"},
	{"IeeeNumericStdLeUnsNat", "IIR_PREDEFINED_IEEE_NUMERIC_STD_LE_UNS_NAT"},
	{"IeeeNumericStdLeUnsUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_LE_UNS_UNS"},
	{"IeeeNumericStdLtIntSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_LT_INT_SGN"},
	{"IeeeNumericStdLtNatUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_LT_NAT_UNS"},
	{"IeeeNumericStdLtSgnInt", "IIR_PREDEFINED_IEEE_NUMERIC_STD_LT_SGN_INT"},
	{"IeeeNumericStdLtSgnSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_LT_SGN_SGN"},
	{"IeeeNumericStdLtUnsNat", "IIR_PREDEFINED_IEEE_NUMERIC_STD_LT_UNS_NAT"},
	{"IeeeNumericStdLtUnsUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_LT_UNS_UNS"},
	{"IeeeNumericStdMatchEqIntSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MATCH_EQ_INT_SGN"},
	{"IeeeNumericStdMatchEqNatUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MATCH_EQ_NAT_UNS"},
	{"IeeeNumericStdMatchEqSgnInt", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MATCH_EQ_SGN_INT"},
	{"IeeeNumericStdMatchEqSgnSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MATCH_EQ_SGN_SGN"},
	{"IeeeNumericStdMatchEqUnsNat", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MATCH_EQ_UNS_NAT"},
	{"IeeeNumericStdMatchEqUnsUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MATCH_EQ_UNS_UNS"},
	{"IeeeNumericStdMatchGeIntSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MATCH_GE_INT_SGN"},
	{"IeeeNumericStdMatchGeNatUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MATCH_GE_NAT_UNS"},
	{"IeeeNumericStdMatchGeSgnInt", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MATCH_GE_SGN_INT"},
	{"IeeeNumericStdMatchGeSgnSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MATCH_GE_SGN_SGN"},
	{"IeeeNumericStdMatchGeUnsNat", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MATCH_GE_UNS_NAT"},
	{"IeeeNumericStdMatchGeUnsUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MATCH_GE_UNS_UNS"},
	{"IeeeNumericStdMatchGtIntSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MATCH_GT_INT_SGN"},
	{"IeeeNumericStdMatchGtNatUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MATCH_GT_NAT_UNS"},
	{"IeeeNumericStdMatchGtSgnInt", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MATCH_GT_SGN_INT"},
	{"IeeeNumericStdMatchGtSgnSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MATCH_GT_SGN_SGN"},
	{"IeeeNumericStdMatchGtUnsNat", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MATCH_GT_UNS_NAT"},
	{"IeeeNumericStdMatchGtUnsUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MATCH_GT_UNS_UNS"},
	{"IeeeNumericStdMatchLeIntSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MATCH_LE_INT_SGN"},
	{"IeeeNumericStdMatchLeNatUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MATCH_LE_NAT_UNS"},
	{"IeeeNumericStdMatchLeSgnInt", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MATCH_LE_SGN_INT"},
	{"IeeeNumericStdMatchLeSgnSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MATCH_LE_SGN_SGN"},
	{"IeeeNumericStdMatchLeUnsNat", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MATCH_LE_UNS_NAT"},
	{"IeeeNumericStdMatchLeUnsUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MATCH_LE_UNS_UNS"},
	{"IeeeNumericStdMatchLog", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MATCH_LOG"},
	{"IeeeNumericStdMatchLtIntSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MATCH_LT_INT_SGN"},
	{"IeeeNumericStdMatchLtNatUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MATCH_LT_NAT_UNS"},
	{"IeeeNumericStdMatchLtSgnInt", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MATCH_LT_SGN_INT"},
	{"IeeeNumericStdMatchLtSgnSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MATCH_LT_SGN_SGN"},
	{"IeeeNumericStdMatchLtUnsNat", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MATCH_LT_UNS_NAT"},
	{"IeeeNumericStdMatchLtUnsUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MATCH_LT_UNS_UNS"},
	{"IeeeNumericStdMatchNeIntSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MATCH_NE_INT_SGN"},
	{"IeeeNumericStdMatchNeNatUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MATCH_NE_NAT_UNS"},
	{"IeeeNumericStdMatchNeSgnInt", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MATCH_NE_SGN_INT"},
	{"IeeeNumericStdMatchNeSgnSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MATCH_NE_SGN_SGN"},
	{"IeeeNumericStdMatchNeUnsNat", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MATCH_NE_UNS_NAT"},
	{"IeeeNumericStdMatchNeUnsUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MATCH_NE_UNS_UNS"},
	{"IeeeNumericStdMatchSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MATCH_SGN"},
	{"IeeeNumericStdMatchSlv", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MATCH_SLV"},
	{"IeeeNumericStdMatchSuv", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MATCH_SUV"},
	{"IeeeNumericStdMatchUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MATCH_UNS"},
	{"IeeeNumericStdMaxIntSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MAX_INT_SGN"},
	{"IeeeNumericStdMaxNatUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MAX_NAT_UNS"},
	{"IeeeNumericStdMaxSgnInt", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MAX_SGN_INT"},
	{"IeeeNumericStdMaxSgnSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MAX_SGN_SGN"},
	{"IeeeNumericStdMaxUnsNat", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MAX_UNS_NAT"},
	{"IeeeNumericStdMaxUnsUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MAX_UNS_UNS"},
	{"IeeeNumericStdMinIntSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MIN_INT_SGN"},
	{"IeeeNumericStdMinNatUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MIN_NAT_UNS"},
	{"IeeeNumericStdMinSgnInt", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MIN_SGN_INT"},
	{"IeeeNumericStdMinSgnSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MIN_SGN_SGN"},
	{"IeeeNumericStdMinUnsNat", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MIN_UNS_NAT"},
	{"IeeeNumericStdMinUnsUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MIN_UNS_UNS"},
	{"IeeeNumericStdModIntSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MOD_INT_SGN"},
	{"IeeeNumericStdModNatUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MOD_NAT_UNS"},
	{"IeeeNumericStdModSgnInt", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MOD_SGN_INT"},
	{"IeeeNumericStdModSgnSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MOD_SGN_SGN"},
	{"IeeeNumericStdModUnsNat", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MOD_UNS_NAT"},
	{"IeeeNumericStdModUnsUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MOD_UNS_UNS"},
	{"IeeeNumericStdMulIntSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MUL_INT_SGN"},
	{"IeeeNumericStdMulNatUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MUL_NAT_UNS"},
	{"IeeeNumericStdMulSgnInt", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MUL_SGN_INT"},
	{"IeeeNumericStdMulSgnSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MUL_SGN_SGN"},
	{"IeeeNumericStdMulUnsNat", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MUL_UNS_NAT"},
	{"IeeeNumericStdMulUnsUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_MUL_UNS_UNS"},
	{"IeeeNumericStdNandLogSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_NAND_LOG_SGN"},
	{"IeeeNumericStdNandLogUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_NAND_LOG_UNS"},
	{"IeeeNumericStdNandSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_NAND_SGN"},
	{"IeeeNumericStdNandSgnLog", "IIR_PREDEFINED_IEEE_NUMERIC_STD_NAND_SGN_LOG"},
	{"IeeeNumericStdNandSgnSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_NAND_SGN_SGN"},
	{"IeeeNumericStdNandUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_NAND_UNS"},
	{"IeeeNumericStdNandUnsLog", "IIR_PREDEFINED_IEEE_NUMERIC_STD_NAND_UNS_LOG"},
	{"IeeeNumericStdNandUnsUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_NAND_UNS_UNS"},
	{"IeeeNumericStdNeIntSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_NE_INT_SGN"},
	{"IeeeNumericStdNeNatUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_NE_NAT_UNS"},
	{"IeeeNumericStdNeSgnInt", "IIR_PREDEFINED_IEEE_NUMERIC_STD_NE_SGN_INT"},
	{"IeeeNumericStdNeSgnSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_NE_SGN_SGN"},
	{"IeeeNumericStdNeUnsNat", "IIR_PREDEFINED_IEEE_NUMERIC_STD_NE_UNS_NAT"},
	{"IeeeNumericStdNeUnsUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_NE_UNS_UNS"},
	{"IeeeNumericStdNegSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_NEG_SGN"},
	{"IeeeNumericStdNegUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_NEG_UNS"},
	{"IeeeNumericStdNorLogSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_NOR_LOG_SGN"},
	{"IeeeNumericStdNorLogUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_NOR_LOG_UNS"},
	{"IeeeNumericStdNorSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_NOR_SGN"},
	{"IeeeNumericStdNorSgnLog", "IIR_PREDEFINED_IEEE_NUMERIC_STD_NOR_SGN_LOG"},
	{"IeeeNumericStdNorSgnSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_NOR_SGN_SGN"},
	{"IeeeNumericStdNorUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_NOR_UNS"},
	{"IeeeNumericStdNorUnsLog", "IIR_PREDEFINED_IEEE_NUMERIC_STD_NOR_UNS_LOG"},
	{"IeeeNumericStdNorUnsUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_NOR_UNS_UNS"},
	{"IeeeNumericStdNotSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_NOT_SGN"},
	{"IeeeNumericStdNotUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_NOT_UNS"},
	{"IeeeNumericStdOrLogSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_OR_LOG_SGN"},
	{"IeeeNumericStdOrLogUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_OR_LOG_UNS"},
	{"IeeeNumericStdOrSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_OR_SGN"},
	{"IeeeNumericStdOrSgnLog", "IIR_PREDEFINED_IEEE_NUMERIC_STD_OR_SGN_LOG"},
	{"IeeeNumericStdOrSgnSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_OR_SGN_SGN"},
	{"IeeeNumericStdOrUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_OR_UNS"},
	{"IeeeNumericStdOrUnsLog", "IIR_PREDEFINED_IEEE_NUMERIC_STD_OR_UNS_LOG"},
	{"IeeeNumericStdOrUnsUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_OR_UNS_UNS"},
	{"IeeeNumericStdRemIntSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_REM_INT_SGN"},
	{"IeeeNumericStdRemNatUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_REM_NAT_UNS"},
	{"IeeeNumericStdRemSgnInt", "IIR_PREDEFINED_IEEE_NUMERIC_STD_REM_SGN_INT"},
	{"IeeeNumericStdRemSgnSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_REM_SGN_SGN"},
	{"IeeeNumericStdRemUnsNat", "IIR_PREDEFINED_IEEE_NUMERIC_STD_REM_UNS_NAT"},
	{"IeeeNumericStdRemUnsUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_REM_UNS_UNS"},
	{"IeeeNumericStdResizeSgnNat", "IIR_PREDEFINED_IEEE_NUMERIC_STD_RESIZE_SGN_NAT"},
	{"IeeeNumericStdResizeSgnSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_RESIZE_SGN_SGN"},
	{"IeeeNumericStdResizeUnsNat", "IIR_PREDEFINED_IEEE_NUMERIC_STD_RESIZE_UNS_NAT"},
	{"IeeeNumericStdResizeUnsUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_RESIZE_UNS_UNS"},
	{"IeeeNumericStdRolSgnInt", "IIR_PREDEFINED_IEEE_NUMERIC_STD_ROL_SGN_INT"},
	{"IeeeNumericStdRolUnsInt", "IIR_PREDEFINED_IEEE_NUMERIC_STD_ROL_UNS_INT"},
	{"IeeeNumericStdRorSgnInt", "IIR_PREDEFINED_IEEE_NUMERIC_STD_ROR_SGN_INT"},
	{"IeeeNumericStdRorUnsInt", "IIR_PREDEFINED_IEEE_NUMERIC_STD_ROR_UNS_INT"},
	{"IeeeNumericStdRotLeftSgnNat", "IIR_PREDEFINED_IEEE_NUMERIC_STD_ROT_LEFT_SGN_NAT"},
	{"IeeeNumericStdRotLeftUnsNat", "IIR_PREDEFINED_IEEE_NUMERIC_STD_ROT_LEFT_UNS_NAT"},
	{"IeeeNumericStdRotRightSgnNat", "IIR_PREDEFINED_IEEE_NUMERIC_STD_ROT_RIGHT_SGN_NAT"},
	{"IeeeNumericStdRotRightUnsNat", "IIR_PREDEFINED_IEEE_NUMERIC_STD_ROT_RIGHT_UNS_NAT"},
	{"IeeeNumericStdShfLeftSgnNat", "IIR_PREDEFINED_IEEE_NUMERIC_STD_SHF_LEFT_SGN_NAT"},
	{"IeeeNumericStdShfLeftUnsNat", "IIR_PREDEFINED_IEEE_NUMERIC_STD_SHF_LEFT_UNS_NAT"},
	{"IeeeNumericStdShfRightSgnNat", "IIR_PREDEFINED_IEEE_NUMERIC_STD_SHF_RIGHT_SGN_NAT"},
	{"IeeeNumericStdShfRightUnsNat", "IIR_PREDEFINED_IEEE_NUMERIC_STD_SHF_RIGHT_UNS_NAT"},
	{"IeeeNumericStdSlaSgnInt", "IIR_PREDEFINED_IEEE_NUMERIC_STD_SLA_SGN_INT"},
	{"IeeeNumericStdSlaUnsInt", "IIR_PREDEFINED_IEEE_NUMERIC_STD_SLA_UNS_INT"},
	{"IeeeNumericStdSllSgnInt", "IIR_PREDEFINED_IEEE_NUMERIC_STD_SLL_SGN_INT"},
	{"IeeeNumericStdSllUnsInt", "IIR_PREDEFINED_IEEE_NUMERIC_STD_SLL_UNS_INT"},
	{"IeeeNumericStdSraSgnInt", "IIR_PREDEFINED_IEEE_NUMERIC_STD_SRA_SGN_INT"},
	{"IeeeNumericStdSraUnsInt", "IIR_PREDEFINED_IEEE_NUMERIC_STD_SRA_UNS_INT"},
	{"IeeeNumericStdSrlSgnInt", "IIR_PREDEFINED_IEEE_NUMERIC_STD_SRL_SGN_INT"},
	{"IeeeNumericStdSrlUnsInt", "IIR_PREDEFINED_IEEE_NUMERIC_STD_SRL_UNS_INT"},
	{"IeeeNumericStdSubIntSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_SUB_INT_SGN"},
	{"IeeeNumericStdSubLogSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_SUB_LOG_SGN"},
	{"IeeeNumericStdSubLogUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_SUB_LOG_UNS"},
	{"IeeeNumericStdSubNatUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_SUB_NAT_UNS"},
	{"IeeeNumericStdSubSgnInt", "IIR_PREDEFINED_IEEE_NUMERIC_STD_SUB_SGN_INT"},
	{"IeeeNumericStdSubSgnLog", "IIR_PREDEFINED_IEEE_NUMERIC_STD_SUB_SGN_LOG"},
	{"IeeeNumericStdSubSgnSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_SUB_SGN_SGN"},
	{"IeeeNumericStdSubUnsLog", "IIR_PREDEFINED_IEEE_NUMERIC_STD_SUB_UNS_LOG"},
	{"IeeeNumericStdSubUnsNat", "IIR_PREDEFINED_IEEE_NUMERIC_STD_SUB_UNS_NAT"},
	{"IeeeNumericStdSubUnsUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_SUB_UNS_UNS"},
	{"IeeeNumericStdTo01Sgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_TO_01_SGN"},
	{"IeeeNumericStdTo01Uns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_TO_01_UNS"},
	{"IeeeNumericStdToHstringSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_TO_HSTRING_SGN"},
	{"IeeeNumericStdToHstringUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_TO_HSTRING_UNS"},
	{"IeeeNumericStdToOstringSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_TO_OSTRING_SGN"},
	{"IeeeNumericStdToOstringUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_TO_OSTRING_UNS"},
	{"IeeeNumericStdToUx01Sgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_TO_UX01_SGN"},
	{"IeeeNumericStdToUx01Uns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_TO_UX01_UNS"},
	{"IeeeNumericStdToX01Sgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_TO_X01_SGN"},
	{"IeeeNumericStdToX01Uns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_TO_X01_UNS"},
	{"IeeeNumericStdToX01zSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_TO_X01Z_SGN"},
	{"IeeeNumericStdToX01zUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_TO_X01Z_UNS"},
	{"IeeeNumericStdToIntSgnInt", "IIR_PREDEFINED_IEEE_NUMERIC_STD_TOINT_SGN_INT"},
	{"IeeeNumericStdToIntUnsNat", "IIR_PREDEFINED_IEEE_NUMERIC_STD_TOINT_UNS_NAT"},
	{"IeeeNumericStdToSgnIntNatSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_TOSGN_INT_NAT_SGN"},
	{"IeeeNumericStdToSgnIntSgnSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_TOSGN_INT_SGN_SGN"},
	{"IeeeNumericStdToUnsNatNatUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_TOUNS_NAT_NAT_UNS"},
	{"IeeeNumericStdToUnsNatUnsUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_TOUNS_NAT_UNS_UNS"},
	{"IeeeNumericStdUnsignedAddNatSlv", "IIR_PREDEFINED_IEEE_NUMERIC_STD_UNSIGNED_ADD_NAT_SLV"},
	{"IeeeNumericStdUnsignedAddSlvNat", "IIR_PREDEFINED_IEEE_NUMERIC_STD_UNSIGNED_ADD_SLV_NAT"},
	{"IeeeNumericStdUnsignedAddSlvSlv", "IIR_PREDEFINED_IEEE_NUMERIC_STD_UNSIGNED_ADD_SLV_SLV"},
	{"IeeeNumericStdUnsignedFindLeftmost", "IIR_PREDEFINED_IEEE_NUMERIC_STD_UNSIGNED_FIND_LEFTMOST"},
	{"IeeeNumericStdUnsignedFindRightmost", "IIR_PREDEFINED_IEEE_NUMERIC_STD_UNSIGNED_FIND_RIGHTMOST"},
	{"IeeeNumericStdUnsignedMaximumSlvSlv", "IIR_PREDEFINED_IEEE_NUMERIC_STD_UNSIGNED_MAXIMUM_SLV_SLV"},
	{"IeeeNumericStdUnsignedMinimumSlvSlv", "IIR_PREDEFINED_IEEE_NUMERIC_STD_UNSIGNED_MINIMUM_SLV_SLV"},
	{"IeeeNumericStdUnsignedResizeSlvNat", "IIR_PREDEFINED_IEEE_NUMERIC_STD_UNSIGNED_RESIZE_SLV_NAT"},
	{"IeeeNumericStdUnsignedResizeSlvSlv", "IIR_PREDEFINED_IEEE_NUMERIC_STD_UNSIGNED_RESIZE_SLV_SLV"},
	{"IeeeNumericStdUnsignedRotateLeft", "IIR_PREDEFINED_IEEE_NUMERIC_STD_UNSIGNED_ROTATE_LEFT"},
	{"IeeeNumericStdUnsignedRotateRight", "IIR_PREDEFINED_IEEE_NUMERIC_STD_UNSIGNED_ROTATE_RIGHT"},
	{"IeeeNumericStdUnsignedShiftLeft", "IIR_PREDEFINED_IEEE_NUMERIC_STD_UNSIGNED_SHIFT_LEFT"},
	{"IeeeNumericStdUnsignedShiftRight", "IIR_PREDEFINED_IEEE_NUMERIC_STD_UNSIGNED_SHIFT_RIGHT"},
	{"IeeeNumericStdUnsignedSubNatSlv", "IIR_PREDEFINED_IEEE_NUMERIC_STD_UNSIGNED_SUB_NAT_SLV"},
	{"IeeeNumericStdUnsignedSubSlvNat", "IIR_PREDEFINED_IEEE_NUMERIC_STD_UNSIGNED_SUB_SLV_NAT"},
	{"IeeeNumericStdUnsignedSubSlvSlv", "IIR_PREDEFINED_IEEE_NUMERIC_STD_UNSIGNED_SUB_SLV_SLV"},
	{"IeeeNumericStdUnsignedToIntegerSlvNat", "IIR_PREDEFINED_IEEE_NUMERIC_STD_UNSIGNED_TO_INTEGER_SLV_NAT"},
	{"IeeeNumericStdUnsignedToSlvNatNat", "IIR_PREDEFINED_IEEE_NUMERIC_STD_UNSIGNED_TO_SLV_NAT_NAT"},
	{"IeeeNumericStdUnsignedToSlvNatSlv", "IIR_PREDEFINED_IEEE_NUMERIC_STD_UNSIGNED_TO_SLV_NAT_SLV"},
	{"IeeeNumericStdUnsignedToSuvNatNat", "IIR_PREDEFINED_IEEE_NUMERIC_STD_UNSIGNED_TO_SUV_NAT_NAT"},
	{"IeeeNumericStdUnsignedToSuvNatSuv", "IIR_PREDEFINED_IEEE_NUMERIC_STD_UNSIGNED_TO_SUV_NAT_SUV"},
	{"IeeeNumericStdXnorLogSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_XNOR_LOG_SGN"},
	{"IeeeNumericStdXnorLogUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_XNOR_LOG_UNS"},
	{"IeeeNumericStdXnorSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_XNOR_SGN"},
	{"IeeeNumericStdXnorSgnLog", "IIR_PREDEFINED_IEEE_NUMERIC_STD_XNOR_SGN_LOG"},
	{"IeeeNumericStdXnorSgnSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_XNOR_SGN_SGN"},
	{"IeeeNumericStdXnorUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_XNOR_UNS"},
	{"IeeeNumericStdXnorUnsLog", "IIR_PREDEFINED_IEEE_NUMERIC_STD_XNOR_UNS_LOG"},
	{"IeeeNumericStdXnorUnsUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_XNOR_UNS_UNS"},
	{"IeeeNumericStdXorLogSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_XOR_LOG_SGN"},
	{"IeeeNumericStdXorLogUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_XOR_LOG_UNS"},
	{"IeeeNumericStdXorSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_XOR_SGN"},
	{"IeeeNumericStdXorSgnLog", "IIR_PREDEFINED_IEEE_NUMERIC_STD_XOR_SGN_LOG"},
	{"IeeeNumericStdXorSgnSgn", "IIR_PREDEFINED_IEEE_NUMERIC_STD_XOR_SGN_SGN"},
	{"IeeeNumericStdXorUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_XOR_UNS"},
	{"IeeeNumericStdXorUnsLog", "IIR_PREDEFINED_IEEE_NUMERIC_STD_XOR_UNS_LOG"},
	{"IeeeNumericStdXorUnsUns", "IIR_PREDEFINED_IEEE_NUMERIC_STD_XOR_UNS_UNS"},
	{"IeeeStdLogicArithAbsSgnSgn", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_ABS_SGN_SGN"},
	{"IeeeStdLogicArithAbsSgnSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_ABS_SGN_SLV"},
	{"IeeeStdLogicArithAddIntSgnSgn", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_ADD_INT_SGN_SGN"},
	{"IeeeStdLogicArithAddIntSgnSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_ADD_INT_SGN_SLV"},
	{"IeeeStdLogicArithAddIntUnsSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_ADD_INT_UNS_SLV"},
	{"IeeeStdLogicArithAddIntUnsUns", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_ADD_INT_UNS_UNS"},
	{"IeeeStdLogicArithAddLogSgnSgn", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_ADD_LOG_SGN_SGN"},
	{"IeeeStdLogicArithAddLogSgnSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_ADD_LOG_SGN_SLV"},
	{"IeeeStdLogicArithAddLogUnsSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_ADD_LOG_UNS_SLV"},
	{"IeeeStdLogicArithAddLogUnsUns", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_ADD_LOG_UNS_UNS"},
	{"IeeeStdLogicArithAddSgnIntSgn", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_ADD_SGN_INT_SGN"},
	{"IeeeStdLogicArithAddSgnIntSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_ADD_SGN_INT_SLV"},
	{"IeeeStdLogicArithAddSgnLogSgn", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_ADD_SGN_LOG_SGN"},
	{"IeeeStdLogicArithAddSgnLogSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_ADD_SGN_LOG_SLV"},
	{"IeeeStdLogicArithAddSgnSgnSgn", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_ADD_SGN_SGN_SGN"},
	{"IeeeStdLogicArithAddSgnSgnSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_ADD_SGN_SGN_SLV"},
	{"IeeeStdLogicArithAddSgnUnsSgn", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_ADD_SGN_UNS_SGN"},
	{"IeeeStdLogicArithAddSgnUnsSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_ADD_SGN_UNS_SLV"},
	{"IeeeStdLogicArithAddUnsIntSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_ADD_UNS_INT_SLV"},
	{"IeeeStdLogicArithAddUnsIntUns", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_ADD_UNS_INT_UNS"},
	{"IeeeStdLogicArithAddUnsLogSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_ADD_UNS_LOG_SLV"},
	{"IeeeStdLogicArithAddUnsLogUns", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_ADD_UNS_LOG_UNS"},
	{"IeeeStdLogicArithAddUnsSgnSgn", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_ADD_UNS_SGN_SGN"},
	{"IeeeStdLogicArithAddUnsSgnSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_ADD_UNS_SGN_SLV"},
	{"IeeeStdLogicArithAddUnsUnsSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_ADD_UNS_UNS_SLV"},
	{"IeeeStdLogicArithAddUnsUnsUns", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_ADD_UNS_UNS_UNS"},
	{"IeeeStdLogicArithConvIntegerInt", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_CONV_INTEGER_INT"},
	{"IeeeStdLogicArithConvIntegerLog", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_CONV_INTEGER_LOG"},
	{"IeeeStdLogicArithConvIntegerSgn", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_CONV_INTEGER_SGN"},
	{"IeeeStdLogicArithConvIntegerUns", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_CONV_INTEGER_UNS"},
	{"IeeeStdLogicArithConvSignedInt", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_CONV_SIGNED_INT"},
	{"IeeeStdLogicArithConvSignedLog", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_CONV_SIGNED_LOG"},
	{"IeeeStdLogicArithConvSignedSgn", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_CONV_SIGNED_SGN"},
	{"IeeeStdLogicArithConvSignedUns", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_CONV_SIGNED_UNS"},
	{"IeeeStdLogicArithConvUnsignedInt", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_CONV_UNSIGNED_INT"},
	{"IeeeStdLogicArithConvUnsignedLog", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_CONV_UNSIGNED_LOG"},
	{"IeeeStdLogicArithConvUnsignedSgn", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_CONV_UNSIGNED_SGN"},
	{"IeeeStdLogicArithConvUnsignedUns", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_CONV_UNSIGNED_UNS"},
	{"IeeeStdLogicArithConvVectorInt", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_CONV_VECTOR_INT"},
	{"IeeeStdLogicArithConvVectorLog", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_CONV_VECTOR_LOG"},
	{"IeeeStdLogicArithConvVectorSgn", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_CONV_VECTOR_SGN"},
	{"IeeeStdLogicArithConvVectorUns", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_CONV_VECTOR_UNS"},
	{"IeeeStdLogicArithEqIntSgn", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_EQ_INT_SGN"},
	{"IeeeStdLogicArithEqIntUns", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_EQ_INT_UNS"},
	{"IeeeStdLogicArithEqSgnInt", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_EQ_SGN_INT"},
	{"IeeeStdLogicArithEqSgnSgn", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_EQ_SGN_SGN"},
	{"IeeeStdLogicArithEqSgnUns", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_EQ_SGN_UNS"},
	{"IeeeStdLogicArithEqUnsInt", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_EQ_UNS_INT"},
	{"IeeeStdLogicArithEqUnsSgn", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_EQ_UNS_SGN"},
	{"IeeeStdLogicArithEqUnsUns", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_EQ_UNS_UNS"},
	{"IeeeStdLogicArithExt", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_EXT"},
	{"IeeeStdLogicArithGeIntSgn", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_GE_INT_SGN"},
	{"IeeeStdLogicArithGeIntUns", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_GE_INT_UNS"},
	{"IeeeStdLogicArithGeSgnInt", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_GE_SGN_INT"},
	{"IeeeStdLogicArithGeSgnSgn", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_GE_SGN_SGN"},
	{"IeeeStdLogicArithGeSgnUns", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_GE_SGN_UNS"},
	{"IeeeStdLogicArithGeUnsInt", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_GE_UNS_INT"},
	{"IeeeStdLogicArithGeUnsSgn", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_GE_UNS_SGN"},
	{"IeeeStdLogicArithGeUnsUns", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_GE_UNS_UNS"},
	{"IeeeStdLogicArithGtIntSgn", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_GT_INT_SGN"},
	{"IeeeStdLogicArithGtIntUns", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_GT_INT_UNS"},
	{"IeeeStdLogicArithGtSgnInt", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_GT_SGN_INT"},
	{"IeeeStdLogicArithGtSgnSgn", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_GT_SGN_SGN"},
	{"IeeeStdLogicArithGtSgnUns", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_GT_SGN_UNS"},
	{"IeeeStdLogicArithGtUnsInt", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_GT_UNS_INT"},
	{"IeeeStdLogicArithGtUnsSgn", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_GT_UNS_SGN"},
	{"IeeeStdLogicArithGtUnsUns", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_GT_UNS_UNS"},
	{"IeeeStdLogicArithIdSgnSgn", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_ID_SGN_SGN"},
	{"IeeeStdLogicArithIdSgnSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_ID_SGN_SLV"},
	{"IeeeStdLogicArithIdUnsSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_ID_UNS_SLV"},
	{"IeeeStdLogicArithIdUnsUns", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_ID_UNS_UNS"},
	{"IeeeStdLogicArithLeIntSgn", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_LE_INT_SGN"},
	{"IeeeStdLogicArithLeIntUns", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_LE_INT_UNS"},
	{"IeeeStdLogicArithLeSgnInt", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_LE_SGN_INT"},
	{"IeeeStdLogicArithLeSgnSgn", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_LE_SGN_SGN"},
	{"IeeeStdLogicArithLeSgnUns", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_LE_SGN_UNS"},
	{"IeeeStdLogicArithLeUnsInt", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_LE_UNS_INT"},
	{"IeeeStdLogicArithLeUnsSgn", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_LE_UNS_SGN"},
	{"IeeeStdLogicArithLeUnsUns", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_LE_UNS_UNS"},
	{"IeeeStdLogicArithLtIntSgn", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_LT_INT_SGN"},
	{"IeeeStdLogicArithLtIntUns", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_LT_INT_UNS"},
	{"IeeeStdLogicArithLtSgnInt", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_LT_SGN_INT"},
	{"IeeeStdLogicArithLtSgnSgn", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_LT_SGN_SGN"},
	{"IeeeStdLogicArithLtSgnUns", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_LT_SGN_UNS"},
	{"IeeeStdLogicArithLtUnsInt", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_LT_UNS_INT"},
	{"IeeeStdLogicArithLtUnsSgn", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_LT_UNS_SGN"},
	{"IeeeStdLogicArithLtUnsUns", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_LT_UNS_UNS"},
	{"IeeeStdLogicArithMulSgnSgnSgn", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_MUL_SGN_SGN_SGN"},
	{"IeeeStdLogicArithMulSgnSgnSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_MUL_SGN_SGN_SLV"},
	{"IeeeStdLogicArithMulSgnUnsSgn", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_MUL_SGN_UNS_SGN"},
	{"IeeeStdLogicArithMulSgnUnsSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_MUL_SGN_UNS_SLV"},
	{"IeeeStdLogicArithMulUnsSgnSgn", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_MUL_UNS_SGN_SGN"},
	{"IeeeStdLogicArithMulUnsSgnSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_MUL_UNS_SGN_SLV"},
	{"IeeeStdLogicArithMulUnsUnsSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_MUL_UNS_UNS_SLV"},
	{"IeeeStdLogicArithMulUnsUnsUns", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_MUL_UNS_UNS_UNS"},
	{"IeeeStdLogicArithNeIntSgn", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_NE_INT_SGN"},
	{"IeeeStdLogicArithNeIntUns", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_NE_INT_UNS"},
	{"IeeeStdLogicArithNeSgnInt", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_NE_SGN_INT"},
	{"IeeeStdLogicArithNeSgnSgn", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_NE_SGN_SGN"},
	{"IeeeStdLogicArithNeSgnUns", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_NE_SGN_UNS"},
	{"IeeeStdLogicArithNeUnsInt", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_NE_UNS_INT"},
	{"IeeeStdLogicArithNeUnsSgn", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_NE_UNS_SGN"},
	{"IeeeStdLogicArithNeUnsUns", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_NE_UNS_UNS"},
	{"IeeeStdLogicArithNegSgnSgn", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_NEG_SGN_SGN"},
	{"IeeeStdLogicArithNegSgnSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_NEG_SGN_SLV"},
	{"IeeeStdLogicArithShlSgn", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_SHL_SGN"},
	{"IeeeStdLogicArithShlUns", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_SHL_UNS"},
	{"IeeeStdLogicArithShrSgn", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_SHR_SGN"},
	{"IeeeStdLogicArithShrUns", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_SHR_UNS"},
	{"IeeeStdLogicArithSubIntSgnSgn", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_SUB_INT_SGN_SGN"},
	{"IeeeStdLogicArithSubIntSgnSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_SUB_INT_SGN_SLV"},
	{"IeeeStdLogicArithSubIntUnsSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_SUB_INT_UNS_SLV"},
	{"IeeeStdLogicArithSubIntUnsUns", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_SUB_INT_UNS_UNS"},
	{"IeeeStdLogicArithSubLogSgnSgn", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_SUB_LOG_SGN_SGN"},
	{"IeeeStdLogicArithSubLogSgnSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_SUB_LOG_SGN_SLV"},
	{"IeeeStdLogicArithSubLogUnsSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_SUB_LOG_UNS_SLV"},
	{"IeeeStdLogicArithSubLogUnsUns", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_SUB_LOG_UNS_UNS"},
	{"IeeeStdLogicArithSubSgnIntSgn", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_SUB_SGN_INT_SGN"},
	{"IeeeStdLogicArithSubSgnIntSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_SUB_SGN_INT_SLV"},
	{"IeeeStdLogicArithSubSgnLogSgn", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_SUB_SGN_LOG_SGN"},
	{"IeeeStdLogicArithSubSgnLogSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_SUB_SGN_LOG_SLV"},
	{"IeeeStdLogicArithSubSgnSgnSgn", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_SUB_SGN_SGN_SGN"},
	{"IeeeStdLogicArithSubSgnSgnSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_SUB_SGN_SGN_SLV"},
	{"IeeeStdLogicArithSubSgnUnsSgn", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_SUB_SGN_UNS_SGN"},
	{"IeeeStdLogicArithSubSgnUnsSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_SUB_SGN_UNS_SLV"},
	{"IeeeStdLogicArithSubUnsIntSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_SUB_UNS_INT_SLV"},
	{"IeeeStdLogicArithSubUnsIntUns", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_SUB_UNS_INT_UNS"},
	{"IeeeStdLogicArithSubUnsLogSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_SUB_UNS_LOG_SLV"},
	{"IeeeStdLogicArithSubUnsLogUns", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_SUB_UNS_LOG_UNS"},
	{"IeeeStdLogicArithSubUnsSgnSgn", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_SUB_UNS_SGN_SGN"},
	{"IeeeStdLogicArithSubUnsSgnSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_SUB_UNS_SGN_SLV"},
	{"IeeeStdLogicArithSubUnsUnsSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_SUB_UNS_UNS_SLV"},
	{"IeeeStdLogicArithSubUnsUnsUns", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_SUB_UNS_UNS_UNS"},
	{"IeeeStdLogicArithSxt", "IIR_PREDEFINED_IEEE_STD_LOGIC_ARITH_SXT"},
	{"IeeeStdLogicMiscAndReduceSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_MISC_AND_REDUCE_SLV"},
	{"IeeeStdLogicMiscAndReduceSuv", "IIR_PREDEFINED_IEEE_STD_LOGIC_MISC_AND_REDUCE_SUV"},
	{"IeeeStdLogicMiscNandReduceSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_MISC_NAND_REDUCE_SLV"},
	{"IeeeStdLogicMiscNandReduceSuv", "IIR_PREDEFINED_IEEE_STD_LOGIC_MISC_NAND_REDUCE_SUV"},
	{"IeeeStdLogicMiscNorReduceSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_MISC_NOR_REDUCE_SLV"},
	{"IeeeStdLogicMiscNorReduceSuv", "IIR_PREDEFINED_IEEE_STD_LOGIC_MISC_NOR_REDUCE_SUV"},
	{"IeeeStdLogicMiscOrReduceSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_MISC_OR_REDUCE_SLV"},
	{"IeeeStdLogicMiscOrReduceSuv", "IIR_PREDEFINED_IEEE_STD_LOGIC_MISC_OR_REDUCE_SUV"},
	{"IeeeStdLogicMiscXnorReduceSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_MISC_XNOR_REDUCE_SLV"},
	{"IeeeStdLogicMiscXnorReduceSuv", "IIR_PREDEFINED_IEEE_STD_LOGIC_MISC_XNOR_REDUCE_SUV"},
	{"IeeeStdLogicMiscXorReduceSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_MISC_XOR_REDUCE_SLV"},
	{"IeeeStdLogicMiscXorReduceSuv", "IIR_PREDEFINED_IEEE_STD_LOGIC_MISC_XOR_REDUCE_SUV"},
	{"IeeeStdLogicSignedAbsSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_SIGNED_ABS_SLV"},
	{"IeeeStdLogicSignedAddIntSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_SIGNED_ADD_INT_SLV"},
	{"IeeeStdLogicSignedAddLogSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_SIGNED_ADD_LOG_SLV"},
	{"IeeeStdLogicSignedAddSlvInt", "IIR_PREDEFINED_IEEE_STD_LOGIC_SIGNED_ADD_SLV_INT"},
	{"IeeeStdLogicSignedAddSlvLog", "IIR_PREDEFINED_IEEE_STD_LOGIC_SIGNED_ADD_SLV_LOG"},
	{"IeeeStdLogicSignedAddSlvSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_SIGNED_ADD_SLV_SLV"},
	{"IeeeStdLogicSignedConvInteger", "IIR_PREDEFINED_IEEE_STD_LOGIC_SIGNED_CONV_INTEGER"},
	{"IeeeStdLogicSignedEqIntSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_SIGNED_EQ_INT_SLV"},
	{"IeeeStdLogicSignedEqSlvInt", "IIR_PREDEFINED_IEEE_STD_LOGIC_SIGNED_EQ_SLV_INT"},
	{"IeeeStdLogicSignedEqSlvSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_SIGNED_EQ_SLV_SLV"},
	{"IeeeStdLogicSignedGeIntSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_SIGNED_GE_INT_SLV"},
	{"IeeeStdLogicSignedGeSlvInt", "IIR_PREDEFINED_IEEE_STD_LOGIC_SIGNED_GE_SLV_INT"},
	{"IeeeStdLogicSignedGeSlvSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_SIGNED_GE_SLV_SLV"},
	{"IeeeStdLogicSignedGtIntSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_SIGNED_GT_INT_SLV"},
	{"IeeeStdLogicSignedGtSlvInt", "IIR_PREDEFINED_IEEE_STD_LOGIC_SIGNED_GT_SLV_INT"},
	{"IeeeStdLogicSignedGtSlvSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_SIGNED_GT_SLV_SLV"},
	{"IeeeStdLogicSignedIdSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_SIGNED_ID_SLV"},
	{"IeeeStdLogicSignedLeIntSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_SIGNED_LE_INT_SLV"},
	{"IeeeStdLogicSignedLeSlvInt", "IIR_PREDEFINED_IEEE_STD_LOGIC_SIGNED_LE_SLV_INT"},
	{"IeeeStdLogicSignedLeSlvSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_SIGNED_LE_SLV_SLV"},
	{"IeeeStdLogicSignedLtIntSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_SIGNED_LT_INT_SLV"},
	{"IeeeStdLogicSignedLtSlvInt", "IIR_PREDEFINED_IEEE_STD_LOGIC_SIGNED_LT_SLV_INT"},
	{"IeeeStdLogicSignedLtSlvSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_SIGNED_LT_SLV_SLV"},
	{"IeeeStdLogicSignedMulSlvSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_SIGNED_MUL_SLV_SLV"},
	{"IeeeStdLogicSignedNeIntSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_SIGNED_NE_INT_SLV"},
	{"IeeeStdLogicSignedNeSlvInt", "IIR_PREDEFINED_IEEE_STD_LOGIC_SIGNED_NE_SLV_INT"},
	{"IeeeStdLogicSignedNeSlvSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_SIGNED_NE_SLV_SLV"},
	{"IeeeStdLogicSignedNegSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_SIGNED_NEG_SLV"},
	{"IeeeStdLogicSignedShl", "IIR_PREDEFINED_IEEE_STD_LOGIC_SIGNED_SHL"},
	{"IeeeStdLogicSignedShr", "IIR_PREDEFINED_IEEE_STD_LOGIC_SIGNED_SHR"},
	{"IeeeStdLogicSignedSubIntSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_SIGNED_SUB_INT_SLV"},
	{"IeeeStdLogicSignedSubLogSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_SIGNED_SUB_LOG_SLV"},
	{"IeeeStdLogicSignedSubSlvInt", "IIR_PREDEFINED_IEEE_STD_LOGIC_SIGNED_SUB_SLV_INT"},
	{"IeeeStdLogicSignedSubSlvLog", "IIR_PREDEFINED_IEEE_STD_LOGIC_SIGNED_SUB_SLV_LOG"},
	{"IeeeStdLogicSignedSubSlvSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_SIGNED_SUB_SLV_SLV"},
	{"IeeeStdLogicUnsignedAddIntSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_UNSIGNED_ADD_INT_SLV"},
	{"IeeeStdLogicUnsignedAddLogSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_UNSIGNED_ADD_LOG_SLV"},
	{"IeeeStdLogicUnsignedAddSlvInt", "IIR_PREDEFINED_IEEE_STD_LOGIC_UNSIGNED_ADD_SLV_INT"},
	{"IeeeStdLogicUnsignedAddSlvLog", "IIR_PREDEFINED_IEEE_STD_LOGIC_UNSIGNED_ADD_SLV_LOG"},
	{"IeeeStdLogicUnsignedAddSlvSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_UNSIGNED_ADD_SLV_SLV"},
	{"IeeeStdLogicUnsignedConvInteger", "IIR_PREDEFINED_IEEE_STD_LOGIC_UNSIGNED_CONV_INTEGER"},
	{"IeeeStdLogicUnsignedEqIntSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_UNSIGNED_EQ_INT_SLV"},
	{"IeeeStdLogicUnsignedEqSlvInt", "IIR_PREDEFINED_IEEE_STD_LOGIC_UNSIGNED_EQ_SLV_INT"},
	{"IeeeStdLogicUnsignedEqSlvSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_UNSIGNED_EQ_SLV_SLV"},
	{"IeeeStdLogicUnsignedGeIntSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_UNSIGNED_GE_INT_SLV"},
	{"IeeeStdLogicUnsignedGeSlvInt", "IIR_PREDEFINED_IEEE_STD_LOGIC_UNSIGNED_GE_SLV_INT"},
	{"IeeeStdLogicUnsignedGeSlvSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_UNSIGNED_GE_SLV_SLV"},
	{"IeeeStdLogicUnsignedGtIntSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_UNSIGNED_GT_INT_SLV"},
	{"IeeeStdLogicUnsignedGtSlvInt", "IIR_PREDEFINED_IEEE_STD_LOGIC_UNSIGNED_GT_SLV_INT"},
	{"IeeeStdLogicUnsignedGtSlvSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_UNSIGNED_GT_SLV_SLV"},
	{"IeeeStdLogicUnsignedIdSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_UNSIGNED_ID_SLV"},
	{"IeeeStdLogicUnsignedLeIntSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_UNSIGNED_LE_INT_SLV"},
	{"IeeeStdLogicUnsignedLeSlvInt", "IIR_PREDEFINED_IEEE_STD_LOGIC_UNSIGNED_LE_SLV_INT"},
	{"IeeeStdLogicUnsignedLeSlvSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_UNSIGNED_LE_SLV_SLV"},
	{"IeeeStdLogicUnsignedLtIntSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_UNSIGNED_LT_INT_SLV"},
	{"IeeeStdLogicUnsignedLtSlvInt", "IIR_PREDEFINED_IEEE_STD_LOGIC_UNSIGNED_LT_SLV_INT"},
	{"IeeeStdLogicUnsignedLtSlvSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_UNSIGNED_LT_SLV_SLV"},
	{"IeeeStdLogicUnsignedMulSlvSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_UNSIGNED_MUL_SLV_SLV"},
	{"IeeeStdLogicUnsignedNeIntSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_UNSIGNED_NE_INT_SLV"},
	{"IeeeStdLogicUnsignedNeSlvInt", "IIR_PREDEFINED_IEEE_STD_LOGIC_UNSIGNED_NE_SLV_INT"},
	{"IeeeStdLogicUnsignedNeSlvSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_UNSIGNED_NE_SLV_SLV"},
	{"IeeeStdLogicUnsignedShl", "IIR_PREDEFINED_IEEE_STD_LOGIC_UNSIGNED_SHL"},
	{"IeeeStdLogicUnsignedShr", "IIR_PREDEFINED_IEEE_STD_LOGIC_UNSIGNED_SHR"},
	{"IeeeStdLogicUnsignedSubIntSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_UNSIGNED_SUB_INT_SLV"},
	{"IeeeStdLogicUnsignedSubLogSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_UNSIGNED_SUB_LOG_SLV"},
	{"IeeeStdLogicUnsignedSubSlvInt", "IIR_PREDEFINED_IEEE_STD_LOGIC_UNSIGNED_SUB_SLV_INT"},
	{"IeeeStdLogicUnsignedSubSlvLog", "IIR_PREDEFINED_IEEE_STD_LOGIC_UNSIGNED_SUB_SLV_LOG"},
	{"IeeeStdLogicUnsignedSubSlvSlv", "IIR_PREDEFINED_IEEE_STD_LOGIC_UNSIGNED_SUB_SLV_SLV"},
	{"IntegerAbsolute", "IIR_PREDEFINED_INTEGER_ABSOLUTE"},
	{"IntegerDiv", "IIR_PREDEFINED_INTEGER_DIV"},
	{"IntegerEquality", "IIR_PREDEFINED_INTEGER_EQUALITY"},
	{"IntegerExp", "IIR_PREDEFINED_INTEGER_EXP"},
	{"IntegerGreater", "IIR_PREDEFINED_INTEGER_GREATER"},
	{"IntegerGreaterEqual", "IIR_PREDEFINED_INTEGER_GREATER_EQUAL"},
	{"IntegerIdentity", "IIR_PREDEFINED_INTEGER_IDENTITY"},
	{"IntegerInequality", "IIR_PREDEFINED_INTEGER_INEQUALITY"},
	{"IntegerLess", "IIR_PREDEFINED_INTEGER_LESS"},
	{"IntegerLessEqual", "IIR_PREDEFINED_INTEGER_LESS_EQUAL"},
	{"IntegerMaximum", "IIR_PREDEFINED_INTEGER_MAXIMUM"},
	{"IntegerMinimum", "IIR_PREDEFINED_INTEGER_MINIMUM"},
	{"IntegerMinus", "IIR_PREDEFINED_INTEGER_MINUS"},
	{"IntegerMod", "IIR_PREDEFINED_INTEGER_MOD"},
	{"IntegerMul", "IIR_PREDEFINED_INTEGER_MUL"},
	{"IntegerNegation", "IIR_PREDEFINED_INTEGER_NEGATION"},
	{"IntegerPhysicalMul", "IIR_PREDEFINED_INTEGER_PHYSICAL_MUL"},
	{"IntegerPlus", "IIR_PREDEFINED_INTEGER_PLUS"},
	{"IntegerRem", "IIR_PREDEFINED_INTEGER_REM"},
	{"IntegerToString", "IIR_PREDEFINED_INTEGER_TO_STRING"},
	{"NowFunction", "IIR_PREDEFINED_NOW_FUNCTION"},
	{"PhysicalAbsolute", "IIR_PREDEFINED_PHYSICAL_ABSOLUTE"},
	{"PhysicalEquality", "IIR_PREDEFINED_PHYSICAL_EQUALITY"},
	{"PhysicalGreater", "IIR_PREDEFINED_PHYSICAL_GREATER"},
	{"PhysicalGreaterEqual", "IIR_PREDEFINED_PHYSICAL_GREATER_EQUAL"},
	{"PhysicalIdentity", "IIR_PREDEFINED_PHYSICAL_IDENTITY"},
	{"PhysicalInequality", "IIR_PREDEFINED_PHYSICAL_INEQUALITY"},
	{"PhysicalIntegerDiv", "IIR_PREDEFINED_PHYSICAL_INTEGER_DIV"},
	{"PhysicalIntegerMul", "IIR_PREDEFINED_PHYSICAL_INTEGER_MUL"},
	{"PhysicalLess", "IIR_PREDEFINED_PHYSICAL_LESS"},
	{"PhysicalLessEqual", "IIR_PREDEFINED_PHYSICAL_LESS_EQUAL"},
	{"PhysicalMaximum", "IIR_PREDEFINED_PHYSICAL_MAXIMUM"},
	{"PhysicalMinimum", "IIR_PREDEFINED_PHYSICAL_MINIMUM"},
	{"PhysicalMinus", "IIR_PREDEFINED_PHYSICAL_MINUS"},
	{"PhysicalMod", "IIR_PREDEFINED_PHYSICAL_MOD"},
	{"PhysicalNegation", "IIR_PREDEFINED_PHYSICAL_NEGATION"},
	{"PhysicalPhysicalDiv", "IIR_PREDEFINED_PHYSICAL_PHYSICAL_DIV"},
	{"PhysicalPlus", "IIR_PREDEFINED_PHYSICAL_PLUS"},
	{"PhysicalRealDiv", "IIR_PREDEFINED_PHYSICAL_REAL_DIV"},
	{"PhysicalRealMul", "IIR_PREDEFINED_PHYSICAL_REAL_MUL"},
	{"PhysicalRem", "IIR_PREDEFINED_PHYSICAL_REM"},
	{"PhysicalToString", "IIR_PREDEFINED_PHYSICAL_TO_STRING"},
	{"Read", "IIR_PREDEFINED_READ"},
	{"ReadLength", "IIR_PREDEFINED_READ_LENGTH"},
	{"RealNowFunction", "IIR_PREDEFINED_REAL_NOW_FUNCTION"},
	{"RealPhysicalMul", "IIR_PREDEFINED_REAL_PHYSICAL_MUL"},
	{"RealToStringDigits", "IIR_PREDEFINED_REAL_TO_STRING_DIGITS"},
	{"RealToStringFormat", "IIR_PREDEFINED_REAL_TO_STRING_FORMAT"},
	{"RecordEquality", "IIR_PREDEFINED_RECORD_EQUALITY"},
	{"RecordInequality", "IIR_PREDEFINED_RECORD_INEQUALITY"},
	{"StdEnvFinish", "IIR_PREDEFINED_STD_ENV_FINISH"},
	{"StdEnvFinishStatus", "IIR_PREDEFINED_STD_ENV_FINISH_STATUS"},
	{"StdEnvResolutionLimit", "IIR_PREDEFINED_STD_ENV_RESOLUTION_LIMIT"},
	{"StdEnvStop", "IIR_PREDEFINED_STD_ENV_STOP"},
	{"StdEnvStopStatus", "IIR_PREDEFINED_STD_ENV_STOP_STATUS"},
	{"StdUlogicArrayMatchEquality", "IIR_PREDEFINED_STD_ULOGIC_ARRAY_MATCH_EQUALITY"},
	{"StdUlogicArrayMatchInequality", "IIR_PREDEFINED_STD_ULOGIC_ARRAY_MATCH_INEQUALITY"},
	{"StdUlogicMatchEquality", "IIR_PREDEFINED_STD_ULOGIC_MATCH_EQUALITY"},
	{"StdUlogicMatchGreater", "IIR_PREDEFINED_STD_ULOGIC_MATCH_GREATER"},
	{"StdUlogicMatchGreaterEqual", "IIR_PREDEFINED_STD_ULOGIC_MATCH_GREATER_EQUAL"},
	{"StdUlogicMatchInequality", "IIR_PREDEFINED_STD_ULOGIC_MATCH_INEQUALITY"},
	{"StdUlogicMatchLess", "IIR_PREDEFINED_STD_ULOGIC_MATCH_LESS"},
	{"StdUlogicMatchLessEqual", "IIR_PREDEFINED_STD_ULOGIC_MATCH_LESS_EQUAL"},
	{"TfArrayAnd", "IIR_PREDEFINED_TF_ARRAY_AND"},
	{"TfArrayElementAnd", "IIR_PREDEFINED_TF_ARRAY_ELEMENT_AND"},
	{"TfArrayElementNand", "IIR_PREDEFINED_TF_ARRAY_ELEMENT_NAND"},
	{"TfArrayElementNor", "IIR_PREDEFINED_TF_ARRAY_ELEMENT_NOR"},
	{"TfArrayElementOr", "IIR_PREDEFINED_TF_ARRAY_ELEMENT_OR"},
	{"TfArrayElementXnor", "IIR_PREDEFINED_TF_ARRAY_ELEMENT_XNOR"},
	{"TfArrayElementXor", "IIR_PREDEFINED_TF_ARRAY_ELEMENT_XOR"},
	{"TfArrayNand", "IIR_PREDEFINED_TF_ARRAY_NAND"},
	{"TfArrayNor", "IIR_PREDEFINED_TF_ARRAY_NOR"},
	{"TfArrayNot", "IIR_PREDEFINED_TF_ARRAY_NOT"},
	{"TfArrayOr", "IIR_PREDEFINED_TF_ARRAY_OR"},
	{"TfArrayXnor", "IIR_PREDEFINED_TF_ARRAY_XNOR"},
	{"TfArrayXor", "IIR_PREDEFINED_TF_ARRAY_XOR"},
	{"TfElementArrayAnd", "IIR_PREDEFINED_TF_ELEMENT_ARRAY_AND"},
	{"TfElementArrayNand", "IIR_PREDEFINED_TF_ELEMENT_ARRAY_NAND"},
	{"TfElementArrayNor", "IIR_PREDEFINED_TF_ELEMENT_ARRAY_NOR"},
	{"TfElementArrayOr", "IIR_PREDEFINED_TF_ELEMENT_ARRAY_OR"},
	{"TfElementArrayXnor", "IIR_PREDEFINED_TF_ELEMENT_ARRAY_XNOR"},
	{"TfElementArrayXor", "IIR_PREDEFINED_TF_ELEMENT_ARRAY_XOR"},
	{"TfReductionAnd", "IIR_PREDEFINED_TF_REDUCTION_AND"},
	{"TfReductionNand", "IIR_PREDEFINED_TF_REDUCTION_NAND"},
	{"TfReductionNor", "IIR_PREDEFINED_TF_REDUCTION_NOR"},
	{"TfReductionNot", "IIR_PREDEFINED_TF_REDUCTION_NOT"},
	{"TfReductionOr", "IIR_PREDEFINED_TF_REDUCTION_OR"},
	{"TfReductionXnor", "IIR_PREDEFINED_TF_REDUCTION_XNOR"},
	{"TfReductionXor", "IIR_PREDEFINED_TF_REDUCTION_XOR"},
	{"TimeToStringUnit", "IIR_PREDEFINED_TIME_TO_STRING_UNIT"},
	{"UniversalIRMul", "IIR_PREDEFINED_UNIVERSAL_I_R_MUL"},
	{"UniversalRIDiv", "IIR_PREDEFINED_UNIVERSAL_R_I_DIV"},
	{"UniversalRIMul", "IIR_PREDEFINED_UNIVERSAL_R_I_MUL"},
	{"VectorMaximum", "IIR_PREDEFINED_VECTOR_MAXIMUM"},
	{"VectorMinimum", "IIR_PREDEFINED_VECTOR_MINIMUM"},
	{"Write", "IIR_PREDEFINED_WRITE"},
}
