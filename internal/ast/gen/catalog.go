package main

// kinds lists every node kind in arena tag order.
var kinds = []kindSpec{
	{Name: "Library", Tag: "library_declaration"},
	{Name: "DesignFile"},
	{Name: "DesignUnit"},
	{Name: "ConfigurationDeclaration"},
	{Name: "ContextDeclaration"},
	{Name: "EntityDeclaration"},
	{Name: "PackageDeclaration"},
	{Name: "PackageInstantiationDeclaration"},
	{Name: "ArchitectureBody"},
	{Name: "PackageBody"},
	{Name: "LibraryClause"},
	{Name: "UseClause"},
	{Name: "UnitDeclaration"},
	{Name: "ConstantDeclaration"},
	{Name: "InterfaceConstantDeclaration"},
	{Name: "SignalDeclaration"},
	{Name: "InterfaceSignalDeclaration"},
	{Name: "VariableDeclaration", Tag: "variable_declaration", Aliases: []string{"interface_variable_declaration"}},
	{Name: "NonObjectAliasDeclaration"},
	{Name: "Signature"},
	{Name: "ProcessStatement"},
	{Name: "ProcedureCallStatement"},
	{Name: "ReportStatement"},
	{Name: "ReturnStatement"},
	{Name: "SimpleSignalAssignmentStatement"},
	{Name: "VariableAssignmentStatement"},
	{Name: "WaitStatement"},
	{Name: "WaveformElement"},
	{Name: "UnaryOperator"},
	{Name: "BinaryOperator"},
	{Name: "SubprogramCall", Tag: "procedure_call", Aliases: []string{"function_call"}},
	{Name: "FloatingPointLiteral"},
	{Name: "IntegerLiteral"},
	{Name: "PhysicalIntLiteral"},
	{Name: "OverflowLiteral"},
	{Name: "StringLiteral", Tag: "string_literal8"},
	{Name: "RangeExpression"},
	{Name: "Aggregate"},
	{Name: "AssociationElementByExpression"},
	{Name: "EnumerationLiteral"},
	{Name: "AttributeName"},
	{Name: "IndexedName"},
	{Name: "ReferenceName"},
	{Name: "SelectedByAllName"},
	{Name: "SelectedName"},
	{Name: "SimpleName"},
	{Name: "SliceName"},
	{Name: "SubprogramDeclaration", Tag: "procedure_declaration", Aliases: []string{"function_declaration"}},
	{Name: "SubprogramBody", Tag: "procedure_body", Aliases: []string{"function_body"}},
	{Name: "IntegerTypeDefinition"},
	{Name: "IntegerSubtypeDefinition"},
	{Name: "FloatingTypeDefinition"},
	{Name: "FloatingSubtypeDefinition"},
	{Name: "ArrayTypeDefinition"},
	{Name: "ArraySubtypeDefinition"},
	{Name: "WildcardTypeDefinition"},
	{Name: "PhysicalTypeDefinition"},
	{Name: "PhysicalSubtypeDefinition"},
	{Name: "EnumerationTypeDefinition"},
	{Name: "EnumerationSubtypeDefinition"},
	{Name: "AccessTypeDefinition"},
	{Name: "FileTypeDefinition"},
	{Name: "FileDefinition"},
	{Name: "TypeDeclaration"},
	{Name: "AnonymousTypeDeclaration"},
	{Name: "SubtypeDeclaration"},
	{Name: "PackageHeader"},
	{Name: "InterfacePackageDeclaration"},
	{Name: "AttributeDeclaration"},
	{Name: "InterfaceFileDeclaration"},
	{Name: "SuspendStateStatement"},
	{Name: "SuspendStateDeclaration"},
	{Name: "Error"},
	{Name: "Attribute"},
	{Name: "AttributeValue"},
	{Name: "ArrayElementResolution"},
	{Name: "OverloadList"},
	{Name: "CharacterLiteral"},
	{Name: "ChoiceByExpression"},
	{Name: "ImplicitDereference"},
	{Name: "EqualityOperator"},
	{Name: "IfStatement"},
	{Name: "Elsif"},
	{Name: "ChoiceByNone"},
	{Name: "CaseStatement"},
	{Name: "AssertionStatement"},
	{Name: "ChoiceByOthers"},
	{Name: "AndOperator"},
	{Name: "OrOperator"},
	{Name: "ChoiceByRange"},
	{Name: "InequalityOperator"},
	{Name: "ExitStatement"},
	{Name: "SelectedElement"},
	{Name: "NullStatement"},
	{Name: "Dereference"},
	{Name: "LessThanOperator"},
	{Name: "IteratorDeclaration"},
	{Name: "ForLoopStatement"},
	{Name: "MultiplicationOperator"},
	{Name: "QualifiedExpression"},
	{Name: "DivisionOperator"},
	{Name: "NullLiteral"},
	{Name: "AllocatorByExpression"},
	{Name: "AggregateInfo"},
	{Name: "NegationOperator"},
	{Name: "NotOperator"},
	{Name: "LessThanOrEqualOperator"},
	{Name: "AllocatorBySubtype"},
	{Name: "WhileLoopStatement"},
	{Name: "GreaterThanOperator"},
	{Name: "ElementDeclaration"},
	{Name: "AttributeSpecification"},
	{Name: "FileDeclaration"},
	{Name: "GreaterThanOrEqualOperator"},
	{Name: "AbsoluteOperator"},
	{Name: "ExponentiationOperator"},
	{Name: "AssociationElementByName"},
	{Name: "RecordTypeDefinition"},
	{Name: "RemainderOperator"},
	{Name: "ObjectAliasDeclaration"},
	{Name: "SensitizedProcessStatement"},
	{Name: "ConcurrentAssertionStatement"},
	{Name: "ConcurrentSimpleSignalAssignment"},
	{Name: "ConcatenationOperator"},
	{Name: "ComponentInstantiationStatement"},
	{Name: "BindingIndication"},
	{Name: "ComponentDeclaration"},
	{Name: "ChoiceByName"},
	{Name: "BlockConfiguration"},
	{Name: "EntityAspectEntity"},
	{Name: "ConfigurationSpecification"},
	{Name: "ComponentConfiguration"},
	{Name: "XorOperator"},
	{Name: "ModulusOperator"},
	{Name: "NandOperator"},
	{Name: "NorOperator"},
	{Name: "BlockStatement"},
	{Name: "EntityAspectConfiguration"},
	{Name: "IdentityOperator"},
	{Name: "PhysicalFpLiteral"},
	{Name: "RecordSubtypeDefinition"},
	{Name: "SimpleAggregate"},
	{Name: "TypeConversion"},
	{Name: "AssociationElementOpen"},
	{Name: "AssociationElementPackage"},
	{Name: "GenerateStatementBody"},
	{Name: "BlockHeader"},
	{Name: "ForGenerateStatement"},
	{Name: "ConcurrentProcedureCallStatement"},
	{Name: "ConditionalWaveform"},
	{Name: "NextStatement"},
	{Name: "GuardSignalDeclaration"},
	{Name: "AssociationElementByIndividual"},
	{Name: "OperatorSymbol"},
	{Name: "ParenthesisExpression"},
	{Name: "IfGenerateStatement"},
	{Name: "ConcurrentSelectedSignalAssignment"},
	{Name: "DisconnectionSpecification"},
	{Name: "AttributeImplicitDeclaration"},
	{Name: "ConcurrentConditionalSignalAssignment"},
	{Name: "EntityAspectOpen"},
	{Name: "AccessSubtypeDefinition"},
	{Name: "IncompleteTypeDefinition"},
}

// groups lists the subset views and their members.
var groups = []groupSpec{
	{
		Name:    "LibraryUnit",
		Doc:     "LibraryUnit is the payload of a design unit.",
		Members: []string{"ConfigurationDeclaration", "ContextDeclaration", "EntityDeclaration", "PackageDeclaration", "PackageInstantiationDeclaration", "ArchitectureBody", "PackageBody"},
	},
	{
		Name:    "ContextItem",
		Doc:     "ContextItem is a library or use clause in front of a design unit.",
		Members: []string{"LibraryClause", "UseClause"},
	},
	{
		Name:    "Declaration",
		Doc:     "Declaration is an item of a declarative part.",
		Members: []string{"AttributeDeclaration", "SubtypeDeclaration", "TypeDeclaration", "AnonymousTypeDeclaration", "SubprogramDeclaration", "SubprogramBody", "ConstantDeclaration", "SignalDeclaration", "VariableDeclaration", "NonObjectAliasDeclaration", "SuspendStateDeclaration"},
	},
	{
		Name:    "ConcurrentStatement",
		Doc:     "ConcurrentStatement is a statement of an architecture or block.",
		Members: []string{"ProcessStatement", "BlockStatement", "SensitizedProcessStatement", "ForGenerateStatement", "IfGenerateStatement", "ComponentInstantiationStatement"},
	},
	{
		Name:    "SequentialStatement",
		Doc:     "SequentialStatement is a statement of a process or subprogram body.",
		Members: []string{"ProcedureCallStatement", "ReportStatement", "AssertionStatement", "ReturnStatement", "SimpleSignalAssignmentStatement", "VariableAssignmentStatement", "WaitStatement", "IfStatement", "ForLoopStatement", "CaseStatement", "WhileLoopStatement", "SuspendStateStatement"},
	},
	{
		Name:    "AssociationElement",
		Doc:     "AssociationElement is one element of a map aspect or aggregate.",
		Members: []string{"AssociationElementByExpression", "AssociationElementByIndividual", "AssociationElementByName", "AssociationElementOpen"},
	},
	{
		Name:    "Expression",
		Doc:     "Expression is a node that yields a value.",
		Members: []string{"CharacterLiteral", "IntegerLiteral", "PhysicalIntLiteral", "OverflowLiteral", "StringLiteral", "UnaryOperator", "BinaryOperator", "SubprogramCall", "Aggregate", "IndexedName", "SimpleName", "SliceName"},
	},
	{
		Name:    "PhysicalLiteral",
		Doc:     "PhysicalLiteral is the value of a unit declaration.",
		Members: []string{"IntegerLiteral", "FloatingPointLiteral"},
	},
	{
		Name:    "Name",
		Doc:     "Name is a node that denotes a named entity or a part of one.",
		Members: []string{"AttributeName", "IndexedName", "SelectedByAllName", "SelectedName", "SimpleName", "SliceName"},
	},
	{
		Name:    "AnySelectedName",
		Doc:     "AnySelectedName is the name of a use clause.",
		Members: []string{"SelectedName", "SelectedByAllName"},
	},
	{
		Name:    "Prefix",
		Doc:     "Prefix is the prefix of a compound name.",
		Members: []string{"AttributeName", "IndexedName", "SelectedName", "SimpleName", "SliceName", "SelectedElement", "SubprogramCall", "Dereference", "ImplicitDereference", "OperatorSymbol"},
	},
	{
		Name:    "NamedEntity",
		Doc:     "NamedEntity is a node a name can resolve to. Error stands for an unresolved name.",
		Members: []string{"TypeDeclaration", "VariableDeclaration", "ConstantDeclaration", "SignalDeclaration", "FileDeclaration", "InterfaceConstantDeclaration", "InterfaceSignalDeclaration", "InterfaceFileDeclaration", "AttributeDeclaration", "ComponentDeclaration", "SubprogramDeclaration", "ConfigurationDeclaration", "ContextDeclaration", "EntityDeclaration", "PackageDeclaration", "PackageInstantiationDeclaration", "ArchitectureBody", "EnumerationLiteral", "UnitDeclaration", "ElementDeclaration", "Library", "Error"},
	},
	{
		Name:    "SubtypeDefinition",
		Doc:     "SubtypeDefinition is a constrained subtype.",
		Members: []string{"IntegerSubtypeDefinition", "FloatingSubtypeDefinition", "PhysicalSubtypeDefinition", "ArraySubtypeDefinition"},
	},
	{
		Name:    "TypeDefinition",
		Doc:     "TypeDefinition is the definition of a named type.",
		Members: []string{"ArrayTypeDefinition", "EnumerationTypeDefinition"},
	},
	{
		Name:    "AnonymousTypeDefinition",
		Doc:     "AnonymousTypeDefinition is the base type behind an anonymous type declaration.",
		Members: []string{"IntegerTypeDefinition", "FloatingTypeDefinition", "PhysicalTypeDefinition", "ArrayTypeDefinition"},
	},
	{
		Name:    "RangeConstraint",
		Doc:     "RangeConstraint is an explicit range or a range attribute.",
		Members: []string{"RangeExpression", "Attribute"},
	},
	{
		Name:    "InstantiatedUnit",
		Doc:     "InstantiatedUnit is what a component instantiation statement instantiates.",
		Members: []string{"EntityAspectEntity", "SimpleName", "SelectedName"},
	},
}
