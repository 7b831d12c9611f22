// Package parser implements a predictive LL(1) recursive-descent parser for
// Java SST, a restricted Java-like language.
//
// # Grammar
//
//	Class             = "class" ident ClassBody .
//	ClassBody         = "{" Declarations "}" .
//	Declarations      = { Constant } { VariableDeclaration } { MethodDeclaration } .
//	Constant          = "final" Type ident "=" Expression ";" .
//	VariableDecl      = Type ident ";" .
//	MethodDeclaration = "public" MethodType ident FormalParameters
//	                    "{" { LocalDeclaration } StatementSequence "}" .
//	FormalParameters  = "(" [ FPSection { "," FPSection } ] ")" .
//	FPSection         = Type ident .
//	StatementSequence = { Statement } .
//	Statement         = ident ( "=" Expression | ActualParameters ) ";"
//	                  | IfStatement | WhileStatement | ReturnStatement .
//	IfStatement       = "if" "(" Expression ")" "{" StatementSequence "}"
//	                    "else" "{" StatementSequence "}" .
//	WhileStatement    = "while" "(" Expression ")" "{" StatementSequence "}" .
//	ReturnStatement   = "return" [ SimpleExpression ] ";" .
//	Expression        = SimpleExpression [ ( "==" | "<" | "<=" | ">" | ">=" ) SimpleExpression ] .
//	SimpleExpression  = Term { ( "+" | "-" ) Term } .
//	Term              = Factor { ( "*" | "/" ) Factor } .
//	Factor            = ident [ ActualParameters ] | number | "(" Expression ")" .
//	ActualParameters  = "(" [ Expression { "," Expression } ] ")" .
//	Type              = "int" .
//	MethodType        = "void" | "int" .
//
// Every decision is made on the single lookahead token, using the FIRST sets
// returned by First. The parser never backtracks. Grammar returns the same
// productions as a verified golang.org/x/exp/ebnf grammar.
//
// # Errors
//
// Parsing stops at the first error. A *SyntaxError names the offending token
// and every token kind the grammar accepts at that point. Declaring a name
// twice in one scope yields a *symbols.DuplicateDeclarationError.
//
// # Symbols
//
// Declarations are recorded while parsing. The class body, every method
// body, every if statement and every while statement open a scope that is
// discarded when the construct ends; Parse returns the class scope. Method
// names are declared before the method body is parsed, so methods may call
// themselves.
//
// Constant initializers are folded to 32-bit integers while parsing. A
// constant whose initializer is not a constant expression is declared with
// Evaluated set to false; its value is left to a later pass.
// Division by zero or an out-of-range literal in an initializer is an
// *EvalError. Anywhere else the same expression only has an unknown value.
//
// # Recursion
//
// Productions are ordinary recursive calls, so stack depth grows with the
// nesting depth of the source, not with its length.
//
// # Thread Safety
//
// A Parser parses one input and is not safe for concurrent use.
package parser
