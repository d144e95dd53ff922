package internal

import (
	"strings"
	"testing"
)

func generate(t *testing.T, source string, opts Options) string {
	t.Helper()
	program, err := Parse(Tokenize(source))
	if err != nil {
		t.Fatalf("Error on: \n%s\n\tunexpected parse error %v", source, err)
	}
	if err := Analyze(program); err != nil {
		t.Fatalf("Error on: \n%s\n\tunexpected semantic error %v", source, err)
	}
	return GenerateWithOptions(program, opts)
}

func checkBalanced(t *testing.T, code string) {
	t.Helper()
	depth := 0
	for _, c := range code {
		switch c {
		case '{':
			depth++
		case '}':
			depth--
		}
		if depth < 0 {
			t.Errorf("Closing brace without opening one:\n%s", code)
			return
		}
	}
	if depth != 0 {
		t.Errorf("Unbalanced braces (%d open):\n%s", depth, code)
	}
}

func TestGenerateProgram(t *testing.T) {
	expected := `using System;
using System.Collections.Generic;

namespace 文言文程序
{
    public class 主類
    {
        public static void Main()
        {
            Console.WriteLine((3 + 5));
        }
    }
}
`
	program, err := Parse(Tokenize("云三加五"))
	if err != nil {
		t.Fatal(err)
	}
	if code := Generate(program); code != expected {
		t.Errorf("\nExpected:\n----\n%s----\nFound:\n----\n%s----", expected, code)
	}

	// Empty program
	program, _ = Parse(Tokenize(""))
	checkBalanced(t, Generate(program))
}

func TestGenerateOptions(t *testing.T) {
	code := generate(t, "若真者\n\t云一\n云云", Options{
		Namespace: "Demo",
		Class:     "Program",
		Indent:    "\t",
	})
	for _, fragment := range []string{
		"namespace Demo\n{\n\tpublic class Program\n\t{\n",
		"\t\t\tif (true)\n\t\t\t{\n\t\t\t\tConsole.WriteLine(1);\n\t\t\t}\n",
	} {
		if !strings.Contains(code, fragment) {
			t.Errorf("Output should contain %q:\n%s", fragment, code)
		}
	}
}

func TestGenerateDeclarations(t *testing.T) {
	a, b, c := identifier("甲"), identifier("乙"), identifier("丙")

	checkCompile(t, "吾有一數曰「甲」也", "double "+a+" = 0.0;")
	checkCompile(t, "吾有一言曰「乙」也", "string "+b+` = "";`)
	checkCompile(t, "吾有一列曰「丙」也", "List<object> "+c+" = new List<object>();")

	checkCompile(t, "吾有一數曰「甲」其值四十二也", "double "+a+" = 42;")
	checkCompile(t, "吾有一言曰「乙」其值「你好世界」也", "string "+b+` = "你好世界";`)
	checkCompile(t, "吾有一列曰「丙」其值一、二、三也", "List<object> "+c+" = new List<object> { 1, 2, 3 };")
	checkCompile(t, "吾有一數曰「甲」其值一也\n甲其值甲加一也", a+" = ("+a+" + 1);")
}

func TestGenerateControlFlow(t *testing.T) {
	checkCompile(t, "若三大於二者\n\t云「真」\n若非\n\t云「假」\n云云",
		"if ((3 > 2))", "else", `Console.WriteLine("真");`, `Console.WriteLine("假");`)

	code := checkCompile(t, "若三小於二者\n\t云一\n云云", "if ((3 < 2))")
	if strings.Contains(code, "else") {
		t.Errorf("Empty else branch should be omitted:\n%s", code)
	}

	checkCompile(t, "恆為是\n\t乃止\n云云", "while (true)", "break;")
	checkCompile(t, "云一等於一", "Console.WriteLine((1 == 1));")
	checkCompile(t, "云六除二減一", "Console.WriteLine(((6 / 2) - 1));")
}

func TestGenerateFunctions(t *testing.T) {
	fn, param := identifier("甲"), identifier("乙")

	code := checkCompile(t, "有術曰「甲」必先得一數曰「乙」\n\t乃得乙乘二\n之術也\n云施甲以三",
		"dynamic "+fn+"(double "+param+")",
		"return ("+param+" * 2);",
		"Console.WriteLine("+fn+"(3));",
	)
	if strings.Contains(code, "return null;") {
		t.Errorf("A trailing return should not get another one:\n%s", code)
	}

	checkCompile(t, "有術曰「甲」必先得一數曰「乙」、一言曰「丙」\n\t云乙\n之術也",
		"dynamic "+fn+"(double "+param+", string "+identifier("丙")+")",
		"return null;",
	)
	checkCompile(t, "有術曰「甲」\n\t乃得\n之術也\n施甲", "return null;", fn+"();")
}

func TestGenerateBuiltins(t *testing.T) {
	checkCompile(t, "云真\n云假\n云空",
		"Console.WriteLine(true);", "Console.WriteLine(false);", "Console.WriteLine(null);")
	checkCompile(t, "施「輸出」以「你好」", `Console.WriteLine("你好");`)
	checkCompile(t, "吾有一言曰「甲」其值施「輸入」也", "= Console.ReadLine();")
	checkCompile(t, "云施「長度」以「你好」", `Console.WriteLine(Convert.ToString("你好").Length);`)
	checkCompile(t, "吾有一數曰「甲」其值施「轉換」以「3」也", `= Convert.ToDouble("3");`)

	// Shadowed builtins are ordinary variables
	code := checkCompile(t, "若一者\n\t吾有一數曰「真」其值二也\n\t云真\n云云",
		"Console.WriteLine("+identifier("真")+");")
	if strings.Contains(code, "Console.WriteLine(true);") {
		t.Errorf("Shadowed 真 should not render as true:\n%s", code)
	}
}

func TestGenerateStrings(t *testing.T) {
	checkCompile(t, "云「a\"b\\c」", `Console.WriteLine("a\"b\\c");`)
	checkCompile(t, "云「一\n二\t三」", `Console.WriteLine("一\n二\t三");`)
	checkCompile(t, "云「{x}」", `Console.WriteLine("\u007Bx\u007D");`)
}

func TestGenerateBalanced(t *testing.T) {
	sources := []string{
		"",
		"云「{{{」",
		"云「}」\n云「{」",
		"若真者\n\t若假者\n\t\t云「}}」\n\t若非\n\t\t恆為是\n\t\t\t乃止\n\t\t云云\n\t云云\n云云",
		"有術曰「甲」必先得一數曰「乙」\n\t若乙大於一者\n\t\t乃得施甲以乙減一\n\t云云\n\t乃得一\n之術也\n云施甲以十",
		"吾有一列曰「丙」其值「{」、「}」、「{」也",
		"吾有一數曰「x{」也",
		"有術曰「f}」\n之術也\n施「f}」",
		"吾有一言曰「{a}」其值「}」也\n云「{a}」",
	}
	for _, source := range sources {
		code := checkCompile(t, source)
		checkBalanced(t, code)
	}
}

func TestIdentifiers(t *testing.T) {
	a := identifier("甲")
	if a != identifier("甲") {
		t.Error("Mangling should be deterministic")
	}
	if !strings.HasPrefix(a, mangledPrefix) || len(a) != len(mangledPrefix)+16 {
		t.Errorf("Unexpected mangled name %s", a)
	}
	if a == identifier("乙") {
		t.Error("Different names should not collide")
	}
	if identifier("foo_1") != "foo_1" {
		t.Errorf("ASCII names should pass through instead of %s", identifier("foo_1"))
	}
	if mixed := identifier("foo甲"); !strings.HasPrefix(mixed, mangledPrefix) {
		t.Errorf("Names with Han characters should be mangled instead of %s", mixed)
	}

	// Anything that is not a plain ASCII identifier is mangled
	for _, name := range []string{"x{", "f}", "a b", "1x", "", "a-b", "あ", "カ", "한"} {
		if mangled := identifier(name); !strings.HasPrefix(mangled, mangledPrefix) {
			t.Errorf("%q should be mangled instead of %s", name, mangled)
		}
	}
	for _, name := range []string{"_", "x1", "A_b"} {
		if identifier(name) != name {
			t.Errorf("%q should pass through instead of %s", name, identifier(name))
		}
	}

	// C# keywords are escaped
	if identifier("class") != "@class" {
		t.Errorf("class should become @class instead of %s", identifier("class"))
	}
}

func TestGenerateDeclaredNames(t *testing.T) {
	checkCompile(t, "吾有一數曰「x{」也", "double "+identifier("x{")+" = 0.0;")
	checkCompile(t, "吾有一數曰「a b」也", "double "+identifier("a b")+" = 0.0;")
	checkCompile(t, "吾有一數曰「1x」也", "double "+identifier("1x")+" = 0.0;")
	checkCompile(t, "有術曰「f}」\n之術也", "dynamic "+identifier("f}")+"()")
	checkCompile(t, "吾有一數曰「count」其值三也", "double count = 3;")
	checkCompile(t, "吾有一數曰「int」其值三也\n云int", "double @int = 3;", "Console.WriteLine(@int);")
}
