package token

// The standard token types shared by all bundled grammars. Grammars are free
// to mint additional types with Get/Sub; these are the ones formatters know
// short names for.
var (
	Text       = Get("Text")
	Whitespace = Get("Text", "Whitespace")
	Escape     = Get("Escape")
	Error      = Get("Error")
	Other      = Get("Other")

	Keyword            = Get("Keyword")
	KeywordConstant    = Keyword.Sub("Constant")
	KeywordDeclaration = Keyword.Sub("Declaration")
	KeywordNamespace   = Keyword.Sub("Namespace")
	KeywordPseudo      = Keyword.Sub("Pseudo")
	KeywordReserved    = Keyword.Sub("Reserved")
	KeywordType        = Keyword.Sub("Type")

	Name              = Get("Name")
	NameAttribute     = Name.Sub("Attribute")
	NameBuiltin       = Name.Sub("Builtin")
	NameBuiltinPseudo = NameBuiltin.Sub("Pseudo")
	NameClass         = Name.Sub("Class")
	NameConstant      = Name.Sub("Constant")
	NameDecorator     = Name.Sub("Decorator")
	NameEntity        = Name.Sub("Entity")
	NameException     = Name.Sub("Exception")
	NameFunction      = Name.Sub("Function")
	NameFunctionMagic = NameFunction.Sub("Magic")
	NameProperty      = Name.Sub("Property")
	NameLabel         = Name.Sub("Label")
	NameNamespace     = Name.Sub("Namespace")
	NameOther         = Name.Sub("Other")
	NameTag           = Name.Sub("Tag")
	NameVariable      = Name.Sub("Variable")
	NameVariableClass = NameVariable.Sub("Class")

	Literal     = Get("Literal")
	LiteralDate = Literal.Sub("Date")

	String          = Literal.Sub("String")
	StringAffix     = String.Sub("Affix")
	StringBacktick  = String.Sub("Backtick")
	StringChar      = String.Sub("Char")
	StringDelimiter = String.Sub("Delimiter")
	StringDoc       = String.Sub("Doc")
	StringDouble    = String.Sub("Double")
	StringEscape    = String.Sub("Escape")
	StringHeredoc   = String.Sub("Heredoc")
	StringInterpol  = String.Sub("Interpol")
	StringOther     = String.Sub("Other")
	StringRegex     = String.Sub("Regex")
	StringSingle    = String.Sub("Single")
	StringSymbol    = String.Sub("Symbol")

	Number        = Literal.Sub("Number")
	NumberBin     = Number.Sub("Bin")
	NumberFloat   = Number.Sub("Float")
	NumberHex     = Number.Sub("Hex")
	NumberInteger = Number.Sub("Integer")
	NumberOct     = Number.Sub("Oct")

	Operator     = Get("Operator")
	OperatorWord = Operator.Sub("Word")

	Punctuation = Get("Punctuation")

	Comment          = Get("Comment")
	CommentHashbang  = Comment.Sub("Hashbang")
	CommentMultiline = Comment.Sub("Multiline")
	CommentPreproc   = Comment.Sub("Preproc")
	CommentSingle    = Comment.Sub("Single")
	CommentSpecial   = Comment.Sub("Special")

	Generic           = Get("Generic")
	GenericDeleted    = Generic.Sub("Deleted")
	GenericEmph       = Generic.Sub("Emph")
	GenericError      = Generic.Sub("Error")
	GenericHeading    = Generic.Sub("Heading")
	GenericInserted   = Generic.Sub("Inserted")
	GenericOutput     = Generic.Sub("Output")
	GenericPrompt     = Generic.Sub("Prompt")
	GenericStrong     = Generic.Sub("Strong")
	GenericSubheading = Generic.Sub("Subheading")
	GenericTraceback  = Generic.Sub("Traceback")
)

// shortNames mirrors the conventional highlight class abbreviations.
var shortNames = map[*Type]string{
	Root:       "",
	Text:       "",
	Whitespace: "w",
	Escape:     "esc",
	Error:      "err",
	Other:      "x",

	Keyword:            "k",
	KeywordConstant:    "kc",
	KeywordDeclaration: "kd",
	KeywordNamespace:   "kn",
	KeywordPseudo:      "kp",
	KeywordReserved:    "kr",
	KeywordType:        "kt",

	Name:              "n",
	NameAttribute:     "na",
	NameBuiltin:       "nb",
	NameBuiltinPseudo: "bp",
	NameClass:         "nc",
	NameConstant:      "no",
	NameDecorator:     "nd",
	NameEntity:        "ni",
	NameException:     "ne",
	NameFunction:      "nf",
	NameFunctionMagic: "fm",
	NameProperty:      "py",
	NameLabel:         "nl",
	NameNamespace:     "nn",
	NameOther:         "nx",
	NameTag:           "nt",
	NameVariable:      "nv",
	NameVariableClass: "vc",

	Literal:     "l",
	LiteralDate: "ld",

	String:          "s",
	StringAffix:     "sa",
	StringBacktick:  "sb",
	StringChar:      "sc",
	StringDelimiter: "dl",
	StringDoc:       "sd",
	StringDouble:    "s2",
	StringEscape:    "se",
	StringHeredoc:   "sh",
	StringInterpol:  "si",
	StringOther:     "sx",
	StringRegex:     "sr",
	StringSingle:    "s1",
	StringSymbol:    "ss",

	Number:        "m",
	NumberBin:     "mb",
	NumberFloat:   "mf",
	NumberHex:     "mh",
	NumberInteger: "mi",
	NumberOct:     "mo",

	Operator:     "o",
	OperatorWord: "ow",

	Punctuation: "p",

	Comment:          "c",
	CommentHashbang:  "ch",
	CommentMultiline: "cm",
	CommentPreproc:   "cp",
	CommentSingle:    "c1",
	CommentSpecial:   "cs",

	Generic:           "g",
	GenericDeleted:    "gd",
	GenericEmph:       "ge",
	GenericError:      "gr",
	GenericHeading:    "gh",
	GenericInserted:   "gi",
	GenericOutput:     "go",
	GenericPrompt:     "gp",
	GenericStrong:     "gs",
	GenericSubheading: "gu",
	GenericTraceback:  "gt",
}
